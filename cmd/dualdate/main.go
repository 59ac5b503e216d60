// Command dualdate inspects and converts timestamps exchanged with APIs that
// send wall-clock date-times without a zone ("2019-01-01T00:00:00").
//
// show prints both lenses of each input: the display fields and the UTC wire
// encoding. convert rewrites one CSV column of such strings, appending the
// display and wire forms; Shift_JIS input is decoded on the fly.
//
// Usage:
//
//	dualdate show 2019-01-01T00:00:00
//	dualdate convert --input export.csv --column 0 --encoding shift_jis
package main

func main() {
	execute()
}
