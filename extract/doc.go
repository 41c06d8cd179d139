// Package extract converts heterogeneous document formats into flat plain
// text for indexing.
//
// One extraction rule exists per supported extension (pdf, docx, xlsx,
// xlsm, pptx, txt, html, md, csv); the mapping is fixed, process-wide and
// immutable. Dispatch happens by lower-cased extension:
//
//	text, err := extract.Text("docx", data)
//
// Unknown extensions yield empty text and no error - "no text available"
// is a valid result, not a failure.
//
// Every rule operates on a fully-buffered, seekable in-memory reader; no
// rule streams its input. Binary parsing is delegated to format libraries
// (ledongthuc/pdf, excelize) or, for the OOXML word-processing and
// presentation parts, to a direct zip+XML walk.
package extract
