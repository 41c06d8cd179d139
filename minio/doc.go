// Package minio provides a docstore.Storage implementation backed by MinIO
// or any S3-compatible object storage.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := miniostore.NewStorage(client, "pipeline", miniostore.WithPrefix("artifacts/"))
//	_ = store.Set(ctx, "entities.parquet", data)
//
// The Storage contract is the same as the local file backend: absent keys
// read as (nil, nil), Clear removes everything under the prefix, Child
// scopes a sub-pipeline to a deeper prefix. WithRemote call options are
// ignored since the bucket itself is the remote medium.
package minio
