package levelgen

import (
	"errors"
	"testing"

	"mazegen/pkg/engine/rng"
	"mazegen/pkg/engine/world"
)

func TestCarveRoom_FullGridScenario(t *testing.T) {
	grid := latticeGrid(t, 4, 4)

	carver := Carver{Size: 4}
	candidates := carver.Candidates(grid)
	if len(candidates) != 1 || candidates[0] != (world.Coord{}) {
		t.Fatalf("Candidates = %v, want [0:0]", candidates)
	}

	room, placements, err := carver.Carve(grid, rng.NewSeeded(1))
	if err != nil {
		t.Fatalf("Carve err = %v", err)
	}
	if room.Anchor != (world.Coord{}) || room.Size != 4 {
		t.Errorf("room = %+v, want anchor 0:0 size 4", room)
	}
	if grid.FreeCount() != 0 {
		t.Errorf("FreeCount() = %d, want 0 (room covers the whole grid)", grid.FreeCount())
	}

	walls := 0
	for _, p := range placements {
		if p.Kind == Wall {
			walls++
		}
	}
	if walls != 11 {
		t.Errorf("walls = %d, want 11 (12 border tiles minus the door)", walls)
	}

	features, shortfalls := PlaceFeatures(grid, []FeatureRequest{
		{Kind: Key, Quota: 1, AttemptMultiplier: 10},
		{Kind: Trap, Quota: 3, AttemptMultiplier: 10},
	}, rng.NewSeeded(2))
	if len(features) != 0 {
		t.Errorf("PlaceFeatures on a full grid = %d placements, want 0", len(features))
	}
	if len(shortfalls) != 2 {
		t.Errorf("shortfalls = %v, want one per request", shortfalls)
	}
}

func TestCarveRoom_DoorAndGoalBySide(t *testing.T) {
	tests := []struct {
		side     world.Side
		wantDoor world.Coord
		wantGoal world.Coord
	}{
		{world.Top, world.Coord{Row: 3, Col: 1}, world.Coord{Row: 1, Col: 2}},
		{world.Bottom, world.Coord{Row: 0, Col: 1}, world.Coord{Row: 2, Col: 2}},
		{world.Left, world.Coord{Row: 1, Col: 0}, world.Coord{Row: 2, Col: 2}},
		{world.Right, world.Coord{Row: 1, Col: 3}, world.Coord{Row: 2, Col: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			grid := latticeGrid(t, 4, 4)
			// anchor index, side index, door offset 1, goal offset 2
			src := rng.NewScripted(0, int(tt.side), 0, 1)

			room, placements, err := CarveRoom(grid, 4, src)
			if err != nil {
				t.Fatalf("CarveRoom err = %v", err)
			}
			if src.Calls() != 4 {
				t.Errorf("random draws = %d, want 4", src.Calls())
			}
			if room.DoorSide != tt.side {
				t.Errorf("DoorSide = %v, want %v", room.DoorSide, tt.side)
			}
			if room.Door != tt.wantDoor {
				t.Errorf("Door = %v, want %v", room.Door, tt.wantDoor)
			}
			if room.Goal != tt.wantGoal {
				t.Errorf("Goal = %v, want %v", room.Goal, tt.wantGoal)
			}

			last := placements[len(placements)-1]
			if last.Kind != Exit || last.Tile.Coord() != tt.wantGoal {
				t.Errorf("last placement = %v at %v, want exit at %v", last.Kind, last.Tile.Coord(), tt.wantGoal)
			}
			for _, p := range placements[:len(placements)-1] {
				if p.Tile.Coord() == room.Door {
					t.Errorf("wall placed on door tile %v", room.Door)
				}
			}
		})
	}
}

func TestCarveRoom_NotFoundLeavesGridUntouched(t *testing.T) {
	// 4x4 lattice missing one interior tile: no 4x4 block exists
	anchors := world.Lattice(4, 4, 1, world.Vec3{})
	anchors = append(anchors[:5], anchors[6:]...)
	grid, err := BuildGrid(anchors, 1)
	if err != nil {
		t.Fatalf("BuildGrid err = %v", err)
	}

	src := rng.NewScripted()
	_, placements, err := CarveRoom(grid, 4, src)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("CarveRoom err = %v, want ErrNotFound", err)
	}
	if placements != nil {
		t.Errorf("placements = %v, want nil", placements)
	}
	if src.Calls() != 0 {
		t.Errorf("random draws = %d, want 0", src.Calls())
	}
	if grid.FreeCount() != grid.Len() {
		t.Errorf("FreeCount() = %d, want %d (grid untouched)", grid.FreeCount(), grid.Len())
	}
}

func TestCarveRoom_InvalidSize(t *testing.T) {
	grid := latticeGrid(t, 4, 4)
	for _, size := range []int{0, 1, 2} {
		if _, _, err := CarveRoom(grid, size, rng.NewScripted()); !errors.Is(err, ErrInvalidRoomSize) {
			t.Errorf("CarveRoom(size=%d) err = %v, want ErrInvalidRoomSize", size, err)
		}
	}
}

func TestCarver_CandidatesSkipOccupied(t *testing.T) {
	grid := latticeGrid(t, 5, 5)
	grid.Claim(0, 0)

	candidates := Carver{Size: 3}.Candidates(grid)
	if len(candidates) != 8 {
		t.Fatalf("len(Candidates) = %d, want 8", len(candidates))
	}
	for _, c := range candidates {
		if c == (world.Coord{}) {
			t.Errorf("Candidates contains 0:0 whose block holds an occupied tile")
		}
		if c.Row > 2 || c.Col > 2 {
			t.Errorf("candidate %v would leave the grid", c)
		}
	}
}

func TestCarveRoom_Properties(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		grid := latticeGrid(t, 9, 7)
		// scatter a few obstacles first so blocks have to be searched for
		for _, c := range []world.Coord{{Row: 4, Col: 3}, {Row: 0, Col: 6}, {Row: 8, Col: 0}} {
			grid.Claim(c.Row, c.Col)
		}
		before := occupiedCoords(grid)

		room, placements, err := CarveRoom(grid, 4, rng.NewSeeded(seed))
		if err != nil {
			t.Fatalf("seed %d: CarveRoom err = %v", seed, err)
		}

		for _, c := range room.Coords() {
			if before[c] {
				t.Fatalf("seed %d: room covers %v which was occupied before carving", seed, c)
			}
			if !grid.GetTileAt(c).Occupied {
				t.Fatalf("seed %d: room tile %v not claimed", seed, c)
			}
		}

		if !room.OnBorder(room.Door) || room.IsCorner(room.Door) {
			t.Fatalf("seed %d: door %v must be a non-corner border tile", seed, room.Door)
		}
		if !room.Contains(room.Goal) || room.OnBorder(room.Goal) {
			t.Fatalf("seed %d: goal %v must be inside the room", seed, room.Goal)
		}

		switch room.DoorSide {
		case world.Top:
			if room.Goal.Row != room.Anchor.Row+1 {
				t.Fatalf("seed %d: top door, goal row %d want %d", seed, room.Goal.Row, room.Anchor.Row+1)
			}
		case world.Bottom:
			if room.Goal.Row != room.MaxRow()-1 {
				t.Fatalf("seed %d: bottom door, goal row %d want %d", seed, room.Goal.Row, room.MaxRow()-1)
			}
		case world.Left:
			if room.Goal.Col != room.MaxCol()-1 {
				t.Fatalf("seed %d: left door, goal col %d want %d", seed, room.Goal.Col, room.MaxCol()-1)
			}
		case world.Right:
			if room.Goal.Col != room.Anchor.Col+1 {
				t.Fatalf("seed %d: right door, goal col %d want %d", seed, room.Goal.Col, room.Anchor.Col+1)
			}
		}

		walls := 0
		for _, p := range placements {
			if p.Kind == Wall {
				walls++
				if !room.OnBorder(p.Tile.Coord()) {
					t.Fatalf("seed %d: wall at %v is not on the border", seed, p.Tile.Coord())
				}
			}
		}
		if walls != 4*(room.Size-1)-1 {
			t.Fatalf("seed %d: walls = %d, want %d", seed, walls, 4*(room.Size-1)-1)
		}
	}
}
