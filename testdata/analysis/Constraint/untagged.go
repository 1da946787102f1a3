package testdata

//optargen:zero // want `file must have "//go:build optargen" constraint to use optargen directives`
var x = 1
