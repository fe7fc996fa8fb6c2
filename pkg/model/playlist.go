package model

// Playlist is one node in the playlist tree (spec section 3, "Playlist
// node"). A folder has IsFolder set and an empty TrackIDs; a leaf playlist
// has IsFolder clear and an ordered list of track ids.
type Playlist struct {
	ID       uint32
	ParentID uint32 // 0 = root
	Name     string
	IsFolder bool
	Sort     uint32
	TrackIDs []uint32
}
