package utils

import "errors"

// ErrProfessorNotFound distinguishes a missing professor from a store
// failure so handlers can answer 404 instead of 500.
var ErrProfessorNotFound = errors.New("professor not found")

var ErrNoRowsInserted = errors.New("no rows were inserted")
var ErrValueConversion = errors.New("could not convert value")
