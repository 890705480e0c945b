package schemacontext_test

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/abhisnowflakedev/snowflow"
	"github.com/abhisnowflakedev/snowflow/schemacontext"
)

func TestAddColumnUnknownTable(t *testing.T) {
	c := schemacontext.New()

	err := c.AddColumn("Ghost", schemacontext.Column{FLName: "X", SQLName: "X"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, snowflow.ErrUnknownTable))
}

func TestCaseInsensitiveLookupPreservesDeclaredSpelling(t *testing.T) {
	c := schemacontext.New()
	c.AddTable(schemacontext.Table{FLName: "Sales", SQLName: "FACT_SALES"})

	name, ok := c.GetSQLTableName("sales")
	assert.True(t, ok)
	assert.Equal(t, "FACT_SALES", name)

	tables := c.Tables()
	assert.Equal(t, 1, len(tables))
	assert.Equal(t, "Sales", tables[0].FLName)
}

func TestQuotedTableNameIsCanonicalized(t *testing.T) {
	c := schemacontext.New()
	c.AddTable(schemacontext.Table{FLName: "Date", SQLName: "DIM_DATE"})

	_, ok := c.GetSQLTableName("'Date'")
	assert.True(t, ok)
}

func TestAddRelationshipRejectsDanglingEndpoint(t *testing.T) {
	c := schemacontext.New()
	c.AddTable(schemacontext.Table{FLName: "Sales", SQLName: "FACT_SALES"})

	err := c.AddRelationship(schemacontext.Relationship{
		FromTable: "Sales", FromCol: "ProductID",
		ToTable: "Product", ToCol: "ProductID",
		Active: true,
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, snowflow.ErrDanglingRelationship))
}

func TestAddRelationshipRejectsDuplicateActiveEdge(t *testing.T) {
	c := schemacontext.New()
	c.AddTable(schemacontext.Table{FLName: "Sales", SQLName: "FACT_SALES"})
	c.AddTable(schemacontext.Table{FLName: "Product", SQLName: "DIM_PRODUCT"})

	err := c.AddRelationship(schemacontext.Relationship{
		FromTable: "Sales", FromCol: "ProductID",
		ToTable: "Product", ToCol: "ProductID",
		Active: true,
	})
	assert.NoError(t, err)

	err = c.AddRelationship(schemacontext.Relationship{
		FromTable: "Product", FromCol: "ProductID",
		ToTable: "Sales", ToCol: "ProductID",
		Active: true,
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, snowflow.ErrDuplicateActiveRelationship))
}

func TestInactiveRelationshipsDoNotConflict(t *testing.T) {
	c := schemacontext.New()
	c.AddTable(schemacontext.Table{FLName: "Sales", SQLName: "FACT_SALES"})
	c.AddTable(schemacontext.Table{FLName: "Product", SQLName: "DIM_PRODUCT"})

	assert.NoError(t, c.AddRelationship(schemacontext.Relationship{
		FromTable: "Sales", ToTable: "Product", Active: true,
	}))
	assert.NoError(t, c.AddRelationship(schemacontext.Relationship{
		FromTable: "Sales", ToTable: "Product", Active: false,
	}))
}

func TestSampleContextRoundTripsAndRendersPrompt(t *testing.T) {
	c := schemacontext.Sample()

	data, err := c.ToJSON()
	assert.NoError(t, err)

	restored, err := schemacontext.FromJSON(data)
	assert.NoError(t, err)
	assert.True(t, c.Equal(restored))

	prompt := c.ToPromptContext()
	assert.True(t, len(prompt) > 0)
}
