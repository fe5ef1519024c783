package dungeon

import "ancestor-server/pkg/rng"

// Palette - каталог вариантов тайла одного яруса.
type Palette []string

// Виды визуальных тайлов. Клиент сам сопоставляет им спрайты.
const (
	TileTorch = "TORCH"
)

// Пол интерьера: единый каталог, без привязки к этажу.
var floorTiles = Palette{
	"FLOOR_A", "FLOOR_B", "FLOOR_C", "FLOOR_D",
	"FLOOR_E", "FLOOR_F", "FLOOR_G", "FLOOR_H",
}

// Пол тайной комнаты: по одному виду на этаж 1..9.
var secretFloorTiles = Palette{
	"SECRET_FLOOR_F1", "SECRET_FLOOR_F2", "SECRET_FLOOR_F3",
	"SECRET_FLOOR_F4", "SECRET_FLOOR_F5", "SECRET_FLOOR_F6",
	"SECRET_FLOOR_F7", "SECRET_FLOOR_F8", "SECRET_FLOOR_F9",
}

// Внешние стены по ярусам. Индекс 0 не используется.
var outerWallPalettes = [6]Palette{
	nil,
	{"OUTER_F1_A", "OUTER_F1_B", "OUTER_F1_C"},
	{"OUTER_F2_A", "OUTER_F2_B", "OUTER_F2_C"},
	{"OUTER_F3_A", "OUTER_F3_B", "OUTER_F3_C"},
	{"OUTER_F4_A", "OUTER_F4_B", "OUTER_F4_C"},
	{"OUTER_F5_A", "OUTER_F5_B", "OUTER_F5_C"},
}

// Единый каталог внешних стен для этажей глубже девятого.
var allOuterWallTiles = Palette{
	"OUTER_F1_A", "OUTER_F1_B", "OUTER_F1_C",
	"OUTER_F2_A", "OUTER_F2_B", "OUTER_F2_C",
	"OUTER_F3_A", "OUTER_F3_B", "OUTER_F3_C",
	"OUTER_F4_A", "OUTER_F4_B", "OUTER_F4_C",
	"OUTER_F5_A", "OUTER_F5_B", "OUTER_F5_C",
}

// Внутренние (разрушаемые) стены по ярусам.
var innerWallPalettes = [6]Palette{
	nil,
	{"WALL_F1_A", "WALL_F1_B", "WALL_F1_C"},
	{"WALL_F2_A", "WALL_F2_B", "WALL_F2_C"},
	{"WALL_F3_A", "WALL_F3_B", "WALL_F3_C"},
	{"WALL_F4_A", "WALL_F4_B", "WALL_F4_C"},
	{"WALL_F5_A", "WALL_F5_B", "WALL_F5_C"},
}

var allInnerWallTiles = Palette{
	"WALL_F1_A", "WALL_F1_B", "WALL_F1_C",
	"WALL_F2_A", "WALL_F2_B", "WALL_F2_C",
	"WALL_F3_A", "WALL_F3_B", "WALL_F3_C",
	"WALL_F4_A", "WALL_F4_B", "WALL_F4_C",
	"WALL_F5_A", "WALL_F5_B", "WALL_F5_C",
}

// Стены тайной комнаты: по одному виду на этаж 1..9,
// индекс 9 занят маркером отшельника.
var secretWallTiles = Palette{
	"SECRET_WALL_F1", "SECRET_WALL_F2", "SECRET_WALL_F3",
	"SECRET_WALL_F4", "SECRET_WALL_F5", "SECRET_WALL_F6",
	"SECRET_WALL_F7", "SECRET_WALL_F8", "SECRET_WALL_F9",
	"HERMIT",
}

// Pick выбирает случайный вариант из палитры.
func (p Palette) Pick(r *rng.Service) string {
	if len(p) == 0 {
		return ""
	}
	return p[r.Range(0, len(p))]
}

// outerWallTile выбирает тайл внешней стены по полосе этажей:
// нечетные этажи сидят на своей палитре, четные на каждый тайл
// бросают монету между соседними ярусами, глубже девятого -
// единый каталог.
func outerWallTile(floor int, r *rng.Service) string {
	switch {
	case floor == 1:
		return outerWallPalettes[1].Pick(r)
	case floor > 9:
		return allOuterWallTiles.Pick(r)
	case floor%2 == 0:
		tier := floor / 2
		if r.Coin() == 1 {
			tier++
		}
		return outerWallPalettes[tier].Pick(r)
	default:
		return outerWallPalettes[(floor+1)/2].Pick(r)
	}
}

// innerWallPalette выбирает палитру разрушаемых стен. Четные этажи
// делятся по номеру комнаты: первая половина этажа донашивает
// предыдущий ярус, вторая примеряет следующий.
func innerWallPalette(floor, room int) Palette {
	switch {
	case floor == 1:
		return innerWallPalettes[1]
	case floor > 9:
		return allInnerWallTiles
	case floor%2 == 0:
		tier := floor / 2
		if room >= 6 {
			tier++
		}
		return innerWallPalettes[tier]
	default:
		return innerWallPalettes[(floor+1)/2]
	}
}
