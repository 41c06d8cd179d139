// Package docstore provides storage for a document-ingestion pipeline.
//
// It presents one capability set - find, get, getText, set, has, delete,
// clear, child - regardless of where documents physically live: a local
// directory, an in-memory map, an S3-compatible bucket, or an SMB network
// share for source-document enumeration and retrieval.
//
// # Quick Start
//
// Local artifact storage:
//
//	ctx := context.Background()
//	store, _ := docstore.NewFileStorage("./output")
//	_ = store.Set(ctx, "entities.parquet", data)
//	data, _ := store.Get(ctx, "entities.parquet")
//
// Enumerate and extract source documents from a network share:
//
//	creds := smb.Credentials{User: "svc", Password: "...", Server: "fs01", Dir: "docs/393"}
//	for rec, err := range store.Find(ctx, docstore.WithRemote(creds), docstore.WithMaxCount(100)) {
//	    if err != nil {
//	        return err
//	    }
//	    text, err := store.GetText(ctx, rec.Name, docstore.WithRemote(creds))
//	    ...
//	}
//
// Scope a sub-pipeline to a subdirectory without affecting the parent:
//
//	reports := store.Child("reports")
//	_ = reports.Set(ctx, "summary.txt", data) // written under output/reports/
//
// # Semantics
//
//   - Get on an absent key returns (nil, nil); not found is not an error.
//   - GetText dispatches on the file extension (pdf, docx, xlsx, xlsm,
//     pptx, txt, html, md, csv); anything else yields empty text.
//   - Every remote call opens and closes its own session; nothing is
//     pooled, cached, or retried at this layer.
package docstore
