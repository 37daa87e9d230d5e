// Package ir provides the generic tree value that hiccup documents are
// decoded into.
//
// # Overview
//
// A Node represents a single decoded value:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//
// The IR works as a recursive tagged union structure, where values are placed
// in fields depending on the node type.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (lexical form plus int64 or float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes in Values
//   - ObjectType: key-value pairs in Fields and Values
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the String typed key for the value at
// Values[i], so there will always be the same number of fields as values.
// Field order is the insertion order of the source document and is
// significant: encoders and the hiccup renderer emit fields in this order.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	attrs := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "id", Val: ir.FromString("myDiv")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromString("div"), attrs})
package ir
