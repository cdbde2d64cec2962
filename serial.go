// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

import "code.hybscloud.com/atomix"

// Serial identifies a made object in lifecycle events.
// Make hands out serials in increasing order starting at 1; 0 is reserved
// for objects that were never made. 64 bits do not wrap in practice.
type Serial = uint64

// serials is the process-wide source of object serials.
var serials atomix.Uint64

func nextSerial() Serial {
	return serials.Add(1)
}
