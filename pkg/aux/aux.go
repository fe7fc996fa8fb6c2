// Package aux renders the two small constant-template auxiliary files
// rekordbox-format hardware expects alongside export.pdb (spec section 6):
// DEVSETTING.DAT and djprofile.nxs. Both are fixed-size, mostly-constant
// blobs; only the DJ profile name is caller-supplied.
package aux

import "fmt"

const (
	// DevSettingSize is the fixed DEVSETTING.DAT length (spec section 6).
	DevSettingSize = 140
	// ProfileSize is the fixed djprofile.nxs length (spec section 6).
	ProfileSize = 160
	// profileNameOffset and profileNameMaxLen locate the one user-supplied
	// field in djprofile.nxs: a 32-byte zero-padded ASCII name at 0x20.
	profileNameOffset = 0x20
	profileNameMaxLen = 32
)

// DevSetting renders the constant-template DEVSETTING.DAT payload. Nothing
// in it varies per build; its bytes are opaque to rekordbox-format
// hardware beyond being present and the right size.
func DevSetting() [DevSettingSize]byte {
	var out [DevSettingSize]byte
	return out
}

// Profile renders djprofile.nxs with name written at its fixed offset,
// zero-padded to profileNameMaxLen bytes. A name longer than
// profileNameMaxLen bytes is rejected with an error, not truncated.
func Profile(name string) ([ProfileSize]byte, error) {
	var out [ProfileSize]byte
	b := []byte(name)
	if len(b) > profileNameMaxLen {
		return out, fmt.Errorf("profile name %q longer than %d bytes", name, profileNameMaxLen)
	}
	copy(out[profileNameOffset:profileNameOffset+profileNameMaxLen], b)
	return out, nil
}
