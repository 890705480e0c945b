// Package snowflow translates FL (tabular analytic formula language)
// expressions into SQL for a cloud analytic warehouse.
package snowflow

// Dialect identifies the target SQL warehouse dialect.
type Dialect string

// DialectSnowflake is the only dialect currently targeted by the generator.
// The type is kept distinct (rather than inlining the string) so a future
// dialect can be added without changing every call site.
const DialectSnowflake Dialect = "snowflake"
