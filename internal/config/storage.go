package config

type Storage struct {
	// Remote switches image ingestion to the object store. When false,
	// uploads land in UploadDir on local disk.
	//
	// Default: false
	Remote bool
	// Endpoint of the S3 compatible object store, without scheme.
	Endpoint string `validate:"required_if=Remote true"`
	// AccessKey for the object store.
	AccessKey string `validate:"required_if=Remote true"`
	// SecretKey for the object store.
	SecretKey string `validate:"required_if=Remote true"`
	// Bucket that holds uploaded images.
	Bucket string `validate:"required_if=Remote true"`
	// Secure toggles TLS towards the object store.
	//
	// Default: true
	Secure bool
	// UploadDir is the local directory for uploads when Remote is false.
	//
	// Default: uploads
	UploadDir string
}
