package patterns

// seedPatterns is the registry's initial content: one entry per function
// rule the generator implements. It holds no documentation-only entries;
// every registered name has a dedicated rule in the generator.
var seedPatterns = []DaxPattern{
	{
		FLFunction: "SUM", SQLTemplate: "SUM(x)",
		Description: "Aggregate sum of x; SUM() with no argument emits SUM(*).",
		Complexity:  Simple,
		Examples:    []Example{{FL: "SUM(Sales[Amount])", SQL: "SUM(FACT_SALES.AMOUNT)"}},
	},
	{
		FLFunction: "AVERAGE", SQLTemplate: "AVG(x)",
		Description: "FL spells the mean AVERAGE; SQL spells it AVG.",
		Complexity:  Simple,
		Examples:    []Example{{FL: "AVERAGE(Sales[Amount])", SQL: "AVG(FACT_SALES.AMOUNT)"}},
	},
	{
		FLFunction: "COUNT", SQLTemplate: "COUNT(x)",
		Description: "Row count of a column expression.",
		Complexity:  Simple,
	},
	{
		FLFunction: "MIN", SQLTemplate: "MIN(x)",
		Description: "Minimum of x.",
		Complexity:  Simple,
	},
	{
		FLFunction: "MAX", SQLTemplate: "MAX(x)",
		Description: "Maximum of x.",
		Complexity:  Simple,
	},
	{
		FLFunction: "SUMX", SQLTemplate: "SUM(expr)",
		Description: "Row-context iteration over table is approximated; the table argument is discarded with a warning.",
		Complexity:  Medium,
		Examples:    []Example{{FL: "SUMX(Sales, [Amount] * [Quantity])", SQL: "SUM((amount * quantity))"}},
	},
	{
		FLFunction: "AVERAGEX", SQLTemplate: "AVG(expr)",
		Description: "Row-context iteration over table is approximated; the table argument is discarded with a warning.",
		Complexity:  Medium,
	},
	{
		FLFunction: "COUNTROWS", SQLTemplate: "COUNT(*)",
		Description: "Counts rows of the given table (or the implicit context if the argument is absent).",
		Complexity:  Simple,
	},
	{
		FLFunction: "DISTINCTCOUNT", SQLTemplate: "COUNT(DISTINCT x)",
		Description: "Distinct cardinality of x.",
		Complexity:  Simple,
	},
	{
		FLFunction: "IF", SQLTemplate: "CASE WHEN c THEN t ELSE f END",
		Description: "Conditional expression; missing else-branch defaults to NULL.",
		Complexity:  Medium,
		Examples:    []Example{{FL: `IF([Amount] > 0, "pos", "neg")`, SQL: "CASE WHEN (amount > 0) THEN 'pos' ELSE 'neg' END"}},
	},
	{
		FLFunction: "SWITCH", SQLTemplate: "CASE e WHEN v1 THEN r1 ... [ELSE default] END",
		Description: "Value-match chain; the final unpaired argument (if any) becomes the ELSE clause.",
		Complexity:  Medium,
	},
	{
		FLFunction: "DIVIDE", SQLTemplate: "CASE WHEN d = 0 THEN alt ELSE n / d END",
		Description: "Division guarded against divide-by-zero; alt defaults to NULL.",
		Complexity:  Medium,
	},
	{
		FLFunction: "ISBLANK", SQLTemplate: "x IS NULL",
		Description: "FL's BLANK maps to SQL NULL.",
		Complexity:  Simple,
	},
	{
		FLFunction: "COALESCE", SQLTemplate: "COALESCE(a, ...)",
		Description: "Same name and arity in both languages.",
		Complexity:  Simple,
	},
	{
		FLFunction: "CONCATENATE", SQLTemplate: "CONCAT(a, ...)",
		Description: "String concatenation.",
		Complexity:  Simple,
	},
	{
		FLFunction: "LEFT", SQLTemplate: "LEFT(s, n)",
		Description: "Same name and arity.",
		Complexity:  Simple,
	},
	{
		FLFunction: "RIGHT", SQLTemplate: "RIGHT(s, n)",
		Description: "Same name and arity.",
		Complexity:  Simple,
	},
	{
		FLFunction: "MID", SQLTemplate: "SUBSTR(s, start, len)",
		Description: "FL's MID maps to SUBSTR.",
		Complexity:  Simple,
	},
	{
		FLFunction: "LEN", SQLTemplate: "LENGTH(s)",
		Description: "FL's LEN maps to LENGTH.",
		Complexity:  Simple,
	},
	{
		FLFunction: "UPPER", SQLTemplate: "UPPER(s)",
		Description: "Identity by name.",
		Complexity:  Simple,
	},
	{
		FLFunction: "LOWER", SQLTemplate: "LOWER(s)",
		Description: "Identity by name.",
		Complexity:  Simple,
	},
	{
		FLFunction: "TRIM", SQLTemplate: "TRIM(s)",
		Description: "Identity by name.",
		Complexity:  Simple,
	},
	{
		FLFunction: "ABS", SQLTemplate: "ABS(x)",
		Description: "Identity by name.",
		Complexity:  Simple,
	},
	{
		FLFunction: "ROUND", SQLTemplate: "ROUND(...)",
		Description: "Identity by name.",
		Complexity:  Simple,
	},
	{
		FLFunction: "SQRT", SQLTemplate: "SQRT(x)",
		Description: "Identity by name.",
		Complexity:  Simple,
	},
	{
		FLFunction: "POWER", SQLTemplate: "POWER(base, exp)",
		Description: "Identity by name; also the target of the ^ infix operator.",
		Complexity:  Simple,
	},
	{
		FLFunction: "INT", SQLTemplate: "FLOOR(x)",
		Description: "FL's truncating INT maps to FLOOR.",
		Complexity:  Simple,
	},
	{
		FLFunction: "MOD", SQLTemplate: "MOD(n, d)",
		Description: "Identity by name.",
		Complexity:  Simple,
	},
	{
		FLFunction: "CALCULATE", SQLTemplate: "m /* WHERE f1 AND f2 ... */",
		Description: "Filter-context modification is a syntactic approximation only; semantics are deferred.",
		Complexity:  Complex,
	},
	{
		FLFunction: "FILTER", SQLTemplate: "/* FILTER(t, c) */",
		Description: "Emitted as a placeholder comment; no row-context semantics are modeled.",
		Complexity:  Complex,
	},
	{
		FLFunction: "ALL", SQLTemplate: "/* ALL(x) - removes filters */",
		Description: "Emitted as a placeholder comment describing the filter removal it would perform.",
		Complexity:  Complex,
	},
	{
		FLFunction: "VALUES", SQLTemplate: "DISTINCT c",
		Description: "Distinct values of a column.",
		Complexity:  Simple,
	},
	{
		FLFunction: "SAMEPERIODLASTYEAR", SQLTemplate: "DATEADD(year, -1, d)",
		Description: "Shifts a date back one year.",
		Complexity:  Medium,
	},
	{
		FLFunction: "DATEADD", SQLTemplate: "DATEADD(interval, n, d)",
		Description: "FL orders arguments (date, n, interval); SQL wants (interval, n, date).",
		Complexity:  Medium,
	},
	{
		FLFunction: "TOTALYTD", SQLTemplate: "m /* YTD filter applied */",
		Description: "Year-to-date accumulation is a syntactic approximation only.",
		Complexity:  Complex,
	},
	{
		FLFunction: "RELATED", SQLTemplate: "c /* via relationship */",
		Description: "Cross-table lookup via the active relationship graph is approximated as a comment.",
		Complexity:  Complex,
	},
}
