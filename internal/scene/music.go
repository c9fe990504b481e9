package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

var (
	songTitles  = [...]string{"Midnight Dreams", "Summer Breeze", "Electric Soul", "Neon Lights", "Ocean Waves", "City Pulse"}
	songArtists = [...]string{"The Dreamers", "Soul Collective", "Digital Hearts", "Night Riders", "Wave Makers", "Urban Sound"}
	songAlbums  = [...]string{"Night Sessions", "Golden Hour", "Future Sounds", "Endless Journey", "Deep Blue", "Metropolitan"}
)

// MusicInfo describes one discoverable song. It is never mutated after creation.
type MusicInfo struct {
	Title      string
	Artist     string
	Album      string
	AlbumColor RGB
}

func NewMusicInfo(rng *Rand) MusicInfo {
	return MusicInfo{
		Title:      songTitles[rng.Intn(len(songTitles))],
		Artist:     songArtists[rng.Intn(len(songArtists))],
		Album:      songAlbums[rng.Intn(len(songAlbums))],
		AlbumColor: randRGB(rng, [3]float64{100, 100, 100}, [3]float64{255, 255, 255}),
	}
}

// MusicRecord is a small disc drifting inside an interactive bubble. Pos is
// relative to the bubble's local origin.
type MusicRecord struct {
	ID       uuid.UUID
	Pos      mgl64.Vec2
	Vel      mgl64.Vec2
	Size     float64
	Rotation float64
	Color    RGB
	Info     MusicInfo
}

func NewMusicRecord(rng *Rand) *MusicRecord {
	s, c := math.Sincos(rng.Angle())
	dist := rng.RangeF(40, 80)
	return &MusicRecord{
		ID:       uuid.Must(uuid.NewRandomFromReader(rng)),
		Pos:      mgl64.Vec2{c * dist, s * dist}, // may start outside RecordRadius; Update pulls it in
		Vel:      rng.Unit2D().Mul(0.3),
		Size:     rng.RangeF(18, 30),
		Rotation: rng.Angle(),
		Color:    randRGB(rng, [3]float64{40, 40, 40}, [3]float64{80, 80, 80}),
		Info:     NewMusicInfo(rng),
	}
}

// Update advances the record and reflects it elastically off the containment
// circle so |Pos| never exceeds RecordRadius afterwards.
func (r *MusicRecord) Update() {
	r.Pos = r.Pos.Add(r.Vel)
	r.Rotation += RecordSpin

	d := r.Pos.Len()
	if d <= RecordRadius {
		return
	}
	n := r.Pos.Mul(1 / d)
	r.Vel = r.Vel.Sub(n.Mul(2 * r.Vel.Dot(n)))
	r.Pos = n.Mul(RecordRadius)
}
