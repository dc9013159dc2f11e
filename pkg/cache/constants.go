package cache

import "github.com/creatiVision/krypto-accounting-sub001/pkg/fsutil"

// CacheDirPerm is the default permission mode for cache directories (rwx------).
var CacheDirPerm = fsutil.DirModePrivate
