// Package samcsv parses the fresh-lead CSV export: comma-separated rows
// with a fixed 12-column schema and a mandatory header line. Quoted fields
// may contain commas; quote characters toggle quoting and are not part of
// the value. Doubled quotes inside a quoted field are not unescaped, on
// purpose - the splitter mirrors the simpler grammar of the upstream
// export tooling.
package samcsv
