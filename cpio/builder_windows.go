//go:build windows

/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package cpio

import "os"

// fillPlatformStat is a no-op on non-POSIX hosts: owner and device fields
// stay zero, and mode is built from the portable file-attribute bits only
// (already applied by synthesizeEntry before this is called).
func fillPlatformStat(e *Entry, info os.FileInfo) {}
