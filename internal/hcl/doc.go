// Package hcl provides the HCL implementation of config.Loader. It is
// responsible for locating suite files, parsing and decoding them with
// gohcl, evaluating expressions against the process environment, and
// translating the result into the format-agnostic config.Model.
package hcl
