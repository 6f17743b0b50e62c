// Package publish writes rendered pages to a destination.
//
// A Sink stores one page under a key derived from its route. FileSink
// writes into a directory; S3Sink uploads to a bucket with the AWS SDK.
//
//	target, err := publish.ParseTarget("s3://my-site/prefix")
//	sink, err := target.Open(publish.S3Options{Region: "eu-west-1"})
//	err = sink.Put(ctx, publish.KeyForRoute("/about"), []byte(html))
package publish
