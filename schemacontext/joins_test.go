package schemacontext_test

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/abhisnowflakedev/snowflow"
	"github.com/abhisnowflakedev/snowflow/schemacontext"
)

func TestGenerateJoinsRequiresTwoTables(t *testing.T) {
	c := schemacontext.Sample()

	_, _, err := c.GenerateJoins([]string{"Sales"})
	assert.Error(t, err)
	assert.True(t, err == snowflow.ErrNeedAtLeastTwoTables)
}

func TestGenerateJoinsWalksActiveRelationships(t *testing.T) {
	c := schemacontext.Sample()

	sql, warnings, err := c.GenerateJoins([]string{"Sales", "Product", "Customer"})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(warnings))

	assert.True(t, containsAll(sql, []string{
		"INNER JOIN DIM_PRODUCT ON FACT_SALES.PRODUCT_ID = DIM_PRODUCT.PRODUCT_ID",
		"INNER JOIN DIM_CUSTOMER ON FACT_SALES.CUSTOMER_ID = DIM_CUSTOMER.CUSTOMER_ID",
	}))
}

func TestGenerateJoinsWarnsOnDisconnectedTable(t *testing.T) {
	c := schemacontext.New()
	c.AddTable(schemacontext.Table{FLName: "Sales", SQLName: "FACT_SALES"})
	c.AddTable(schemacontext.Table{FLName: "Orphan", SQLName: "DIM_ORPHAN"})

	sql, warnings, err := c.GenerateJoins([]string{"Sales", "Orphan"})
	assert.NoError(t, err)
	assert.True(t, len(warnings) > 0)
	assert.True(t, containsAll(sql, []string{"no active relationship found"}))
}

func containsAll(haystack string, needles []string) bool {
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			return false
		}
	}

	return true
}
