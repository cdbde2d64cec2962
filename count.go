// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package rc

import "code.hybscloud.com/atomix"

// count is one reference counter of a Target.
// Add and CompareAndSwap are acquire-release; reads that decide liveness use
// LoadAcquire and the initial publication in Make uses StoreRelease.
type count = atomix.Uint32
