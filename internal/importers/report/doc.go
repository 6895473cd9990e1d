// Package report parses the report-text lead export: a plain-text document
// of banner-separated blocks, one per lead, with emoji/label-prefixed
// fields. It also serializes a collection back into the same layout for
// export and backup, such that re-parsing the rendered document reproduces
// every serialized field.
package report
