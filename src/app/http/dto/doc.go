// Package dto contains the form payloads posted by the browser and the view
// models handed to the HTML templates.
//
// Forms are read field by field with gin's GetPostForm so an absent field
// can be told apart from an empty one. View models embed JokesLayoutView
// for every page rendered inside the jokes layout.
package dto
