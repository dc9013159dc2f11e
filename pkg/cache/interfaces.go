package cache

//go:generate mockgen -destination=./mocks/manager_mock.go -package=mocks . Manager

// Manager defines the interface for price cache management operations.
type Manager interface {
	Flush() (*FlushResult, error)
	GetInfo() (*Info, error)
	GetDirectory() string
	SetDirectory(dir string) error
}

// FlushResult contains information about what was flushed.
type FlushResult struct {
	// Deleted is the number of regular files removed.
	Deleted int
	// Failed is the number of files whose deletion failed.
	Failed int
	// BytesFreed is the total size of the deleted files.
	BytesFreed int64
	// Missing reports that the cache directory did not exist.
	Missing bool
}

// Info represents cache information.
type Info struct {
	Directory string
	TotalSize int64
	Files     int
}
