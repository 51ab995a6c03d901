package playlist

import "slices"

// Playlist is the canonical song order plus its shuffled view.
// It is not safe for concurrent use; the player controller owns it.
type Playlist struct {
	songs          []Song
	shuffled       []Song
	ShuffleEnabled bool

	shuffle func([]Song) []Song
}

// New creates an empty playlist.
func New() *Playlist {
	return &Playlist{shuffle: Shuffle[Song]}
}

// NewWithShuffler creates an empty playlist that regenerates its shuffled view
// with fn. Tests use it to pin the shuffle order.
func NewWithShuffler(fn func([]Song) []Song) *Playlist {
	return &Playlist{shuffle: fn}
}

// Restore replaces the contents with songs (e.g. loaded from storage) and
// regenerates the shuffled view.
func (p *Playlist) Restore(songs []Song) {
	p.songs = slices.Clone(songs)
	p.shuffled = p.shuffle(p.songs)
}

// Songs returns a copy of the canonical order.
func (p *Playlist) Songs() []Song {
	return slices.Clone(p.songs)
}

// Active returns a copy of whichever view is active.
func (p *Playlist) Active() []Song {
	return slices.Clone(p.activeView())
}

func (p *Playlist) activeView() []Song {
	if p.ShuffleEnabled {
		return p.shuffled
	}
	return p.songs
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	return len(p.songs)
}

// At returns the song at index i of the active view.
func (p *Playlist) At(i int) (Song, bool) {
	view := p.activeView()
	if i < 0 || i >= len(view) {
		return Song{}, false
	}
	return view[i], true
}

// ActiveIndexOf returns the position of id in the active view, or -1.
func (p *Playlist) ActiveIndexOf(id string) int {
	return indexOf(p.activeView(), id)
}

// Find returns the song with the given id.
func (p *Playlist) Find(id string) (Song, bool) {
	if i := indexOf(p.songs, id); i >= 0 {
		return p.songs[i], true
	}
	return Song{}, false
}

// Append adds songs to the end of both views.
func (p *Playlist) Append(songs ...Song) {
	p.songs = append(p.songs, songs...)
	p.shuffled = append(p.shuffled, songs...)
}

// AppendReshuffle adds songs to the canonical order and regenerates the
// shuffled view from the previous shuffled view plus the additions.
func (p *Playlist) AppendReshuffle(songs ...Song) {
	p.songs = append(p.songs, songs...)
	combined := make([]Song, 0, len(p.shuffled)+len(songs))
	combined = append(combined, p.shuffled...)
	combined = append(combined, songs...)
	p.shuffled = p.shuffle(combined)
}

// Remove deletes the song with the given id from both views.
func (p *Playlist) Remove(id string) (Song, bool) {
	i := indexOf(p.songs, id)
	if i < 0 {
		return Song{}, false
	}
	removed := p.songs[i]
	p.songs = slices.Delete(p.songs, i, i+1)
	if j := indexOf(p.shuffled, id); j >= 0 {
		p.shuffled = slices.Delete(p.shuffled, j, j+1)
	}
	return removed, true
}

// Reshuffle regenerates the shuffled view from the canonical order.
func (p *Playlist) Reshuffle() {
	p.shuffled = p.shuffle(p.songs)
}

// VideoIDs returns the video IDs of all external-video songs, in canonical order.
func (p *Playlist) VideoIDs() []string {
	var ids []string
	for _, s := range p.songs {
		if s.Kind == KindExternalVideo && s.VideoID != "" {
			ids = append(ids, s.VideoID)
		}
	}
	return ids
}

// CountByKind returns the number of songs of each kind.
func (p *Playlist) CountByKind() map[Kind]int {
	counts := map[Kind]int{KindExternalVideo: 0, KindLocalAudio: 0}
	for _, s := range p.songs {
		counts[s.Kind]++
	}
	return counts
}

func indexOf(songs []Song, id string) int {
	return slices.IndexFunc(songs, func(s Song) bool { return s.ID == id })
}
