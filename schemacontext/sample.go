package schemacontext

// Sample builds the canonical retail Schema Context used by the
// `/translate/context/sample` boundary and by the package's own tests:
// Sales, Product, Customer, Store and Date, joined by active
// many-to-one relationships from Sales into each dimension.
func Sample() *Context {
	c := New()

	c.AddTable(Table{FLName: "Sales", SQLName: "FACT_SALES", PrimaryKey: "SalesID"})
	c.AddColumn("Sales", Column{FLName: "SalesID", SQLName: "SALES_ID", DataType: "NUMBER"})
	c.AddColumn("Sales", Column{FLName: "Amount", SQLName: "AMOUNT", DataType: "NUMBER"})
	c.AddColumn("Sales", Column{FLName: "Quantity", SQLName: "QUANTITY", DataType: "NUMBER"})
	c.AddColumn("Sales", Column{FLName: "ProductID", SQLName: "PRODUCT_ID", DataType: "NUMBER"})
	c.AddColumn("Sales", Column{FLName: "CustomerID", SQLName: "CUSTOMER_ID", DataType: "NUMBER"})
	c.AddColumn("Sales", Column{FLName: "StoreID", SQLName: "STORE_ID", DataType: "NUMBER"})
	c.AddColumn("Sales", Column{FLName: "Date", SQLName: "SALE_DATE", DataType: "DATE"})

	c.AddTable(Table{FLName: "Product", SQLName: "DIM_PRODUCT", PrimaryKey: "ProductID"})
	c.AddColumn("Product", Column{FLName: "ProductID", SQLName: "PRODUCT_ID", DataType: "NUMBER"})
	c.AddColumn("Product", Column{FLName: "ProductName", SQLName: "PRODUCT_NAME", DataType: "VARCHAR"})
	c.AddColumn("Product", Column{FLName: "Category", SQLName: "CATEGORY", DataType: "VARCHAR"})

	c.AddTable(Table{FLName: "Customer", SQLName: "DIM_CUSTOMER", PrimaryKey: "CustomerID"})
	c.AddColumn("Customer", Column{FLName: "CustomerID", SQLName: "CUSTOMER_ID", DataType: "NUMBER"})
	c.AddColumn("Customer", Column{FLName: "CustomerName", SQLName: "CUSTOMER_NAME", DataType: "VARCHAR"})
	c.AddColumn("Customer", Column{FLName: "Segment", SQLName: "SEGMENT", DataType: "VARCHAR"})

	c.AddTable(Table{FLName: "Store", SQLName: "DIM_STORE", PrimaryKey: "StoreID"})
	c.AddColumn("Store", Column{FLName: "StoreID", SQLName: "STORE_ID", DataType: "NUMBER"})
	c.AddColumn("Store", Column{FLName: "StoreName", SQLName: "STORE_NAME", DataType: "VARCHAR"})
	c.AddColumn("Store", Column{FLName: "Region", SQLName: "REGION", DataType: "VARCHAR"})

	c.AddTable(Table{FLName: "Date", SQLName: "DIM_DATE", PrimaryKey: "Date"})
	c.AddColumn("Date", Column{FLName: "Date", SQLName: "CALENDAR_DATE", DataType: "DATE"})
	c.AddColumn("Date", Column{FLName: "Year", SQLName: "YEAR", DataType: "NUMBER"})
	c.AddColumn("Date", Column{FLName: "Month", SQLName: "MONTH", DataType: "NUMBER"})

	c.AddRelationship(Relationship{FromTable: "Sales", FromCol: "ProductID", ToTable: "Product", ToCol: "ProductID", Cardinality: ManyToOne, Active: true})
	c.AddRelationship(Relationship{FromTable: "Sales", FromCol: "CustomerID", ToTable: "Customer", ToCol: "CustomerID", Cardinality: ManyToOne, Active: true})
	c.AddRelationship(Relationship{FromTable: "Sales", FromCol: "StoreID", ToTable: "Store", ToCol: "StoreID", Cardinality: ManyToOne, Active: true})
	c.AddRelationship(Relationship{FromTable: "Sales", FromCol: "Date", ToTable: "Date", ToCol: "Date", Cardinality: ManyToOne, Active: true})

	return c
}
