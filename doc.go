// Package formgate validates form fields against a category registry and
// gates submission on a full validation pass.
//
// A registry assigns each field identifier to one of four categories (text,
// numeric, file, date). The validation engine checks single fields as the
// user edits them and derives a three-state presentation (neutral, valid,
// invalid) from the touched flag and the current error. The submission gate
// validates every provided field, marks them all touched and only then lets
// the host act on the values.
//
//	form, err := formgate.New(schema.Registry{
//		Text:    []string{"firstName", "lastName"},
//		Numeric: []string{"salary"},
//	})
//	verdict := form.ValidateAll(map[string]model.FieldValue{
//		"firstName": model.Text("John"),
//		"salary":    model.NumericText("-5"),
//	})
//	// verdict.AllValid == false, verdict.Errors["salary"].Message == "must be a positive number"
package formgate
