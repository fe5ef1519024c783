package dungeon

import (
	"github.com/sirupsen/logrus"

	"ancestor-server/internal/domain"
	"ancestor-server/pkg/logger"
	"ancestor-server/pkg/rng"
)

// Габариты комнат.
const (
	BoardRows     = 8
	MaxColumns    = 15
	SecretColumns = 8
	SecretRows    = 5
)

// Params - вход генератора одной комнаты.
type Params struct {
	Floor  int
	Room   int
	Secret bool
	// PrevPos - позиция игрока в момент выхода из предыдущей комнаты.
	// nil для первой комнаты сессии.
	PrevPos *domain.Position
}

// Generate строит комнату: тайлы, стены, предметы, врагов, ловушки,
// спавн игрока и выход. Все случайные решения идут через r.
func Generate(p Params, r *rng.Service) (*RoomLayout, error) {
	final := p.Floor == domain.FinalFloor && p.Room == domain.RoomsPerFloor && !p.Secret

	l := &RoomLayout{
		Floor:  p.Floor,
		Room:   p.Room,
		Secret: p.Secret,
		Final:  final,
	}

	if p.Secret {
		l.Columns, l.Rows = SecretColumns, SecretRows
	} else {
		l.Columns = r.Range(4+p.Floor, 8+p.Floor)
		if l.Columns > MaxColumns {
			l.Columns = MaxColumns
		}
		l.Rows = BoardRows
	}

	buildBoard(l, r)

	if p.Secret {
		buildSecretExtras(l, r)
		l.PlayerSpawn = domain.Position{X: l.Columns - 1, Y: 2}
		return l, nil
	}

	pool := newCellPool(l.Columns, l.Rows)

	// Внутренние стены: [columns, columns+3) из палитры этажа.
	wallPalette := innerWallPalette(p.Floor, p.Room)
	if err := layoutAtRandom(l, pool, r, wallPalette, l.Columns, l.Columns+3, newWallSpawner()); err != nil {
		return nil, err
	}

	// Предметы здоровья: [0, columns-2) из единого каталога.
	if err := layoutAtRandom(l, pool, r, healthCatalog, 0, l.Columns-2, newPickupSpawner()); err != nil {
		return nil, err
	}

	if err := placeEnemies(l, pool, r); err != nil {
		return nil, err
	}

	if err := placeHazards(l, pool, r); err != nil {
		return nil, err
	}

	placePlayerAndExit(l, p.PrevPos, r)

	logger.Log.WithFields(logrus.Fields{
		"floor":    p.Floor,
		"room":     p.Room,
		"columns":  l.Columns,
		"entities": len(l.Entities),
	}).Debug("Room generated")

	return l, nil
}

// buildBoard раскладывает пол интерьера и рамку внешних стен.
// Рамка стоит на x,y = -1 и на columns/rows, углы всегда факелы.
func buildBoard(l *RoomLayout, r *rng.Service) {
	for x := -1; x <= l.Columns; x++ {
		for y := -1; y <= l.Rows; y++ {
			pos := domain.Position{X: x, Y: y}
			border := x == -1 || x == l.Columns || y == -1 || y == l.Rows
			if !border {
				tiles := floorTiles
				if l.Secret {
					tiles = secretFloorTiles
				}
				l.Tiles = append(l.Tiles, Placement{Kind: tiles.Pick(r), Pos: pos})
				continue
			}

			corner := (x == -1 || x == l.Columns) && (y == -1 || y == l.Rows)
			switch {
			case corner:
				l.Tiles = append(l.Tiles, Placement{Kind: TileTorch, Pos: pos})
			case l.Secret:
				// Клетка (columns, 2) остается полом: тут начинается
				// коридор к выходу, он достраивается отдельно.
				if x == l.Columns && y == 2 {
					l.Tiles = append(l.Tiles, Placement{Kind: secretFloorTiles.Pick(r), Pos: pos})
				} else {
					l.Tiles = append(l.Tiles, Placement{Kind: secretWallTiles[l.Floor-1], Pos: pos})
				}
			default:
				l.Tiles = append(l.Tiles, Placement{Kind: outerWallTile(l.Floor, r), Pos: pos})
			}
		}
	}
}

// buildSecretExtras достраивает тайной комнате восточный коридор,
// два гарантированных сундука и отшельника.
func buildSecretExtras(l *RoomLayout, r *rng.Service) {
	c := l.Columns
	// Коридор: две клетки пола этажного вида и выход в его конце.
	corridor := secretFloorTiles[l.Floor-1]
	l.Tiles = append(l.Tiles,
		Placement{Kind: corridor, Pos: domain.Position{X: c + 1, Y: 2}},
		Placement{Kind: corridor, Pos: domain.Position{X: c + 2, Y: 2}},
	)
	for dx := 0; dx <= 3; dx++ {
		l.MarkWalkable(domain.Position{X: c + dx, Y: 2})
	}
	l.Add(NewExit(domain.ExitKindOpen, domain.Position{X: c + 3, Y: 2}, r))

	// Симметричная рамка стен вокруг коридора.
	wall := secretWallTiles[l.Floor-1]
	framePositions := []domain.Position{
		{X: c + 4, Y: 2}, {X: c + 4, Y: 3}, {X: c + 4, Y: 1},
		{X: c + 3, Y: 3}, {X: c + 3, Y: 1},
		{X: c + 2, Y: 3}, {X: c + 2, Y: 1},
		{X: c + 1, Y: 3}, {X: c + 1, Y: 1},
	}
	for _, pos := range framePositions {
		l.Tiles = append(l.Tiles, Placement{Kind: wall, Pos: pos})
	}

	// Гарантированные сундуки из хвоста каталога, выше и ниже отшельника.
	for _, pos := range []domain.Position{{X: 0, Y: 0}, {X: 0, Y: 4}} {
		kind := healthCatalog[r.Range(chestCatalogStart, len(healthCatalog))]
		l.Add(NewPickup(kind, pos, r))
	}

	l.Add(NewHermit(domain.Position{X: 0, Y: 2}, r))
}

// spawner превращает вид тайла в сущность на клетке.
type spawner func(kind string, pos domain.Position, r *rng.Service) *domain.Entity

func newWallSpawner() spawner {
	return func(kind string, pos domain.Position, r *rng.Service) *domain.Entity {
		return NewInnerWall(kind, pos, r)
	}
}

func newPickupSpawner() spawner {
	return NewPickup
}

func newHazardSpawner() spawner {
	return NewHazard
}

// layoutAtRandom тянет количество из [min, max), затем на каждый
// объект - случайную свободную клетку без возврата и случайный вид
// из палитры.
func layoutAtRandom(l *RoomLayout, pool *cellPool, r *rng.Service, palette []string, min, max int, spawn spawner) error {
	count := r.Range(min, max)
	for i := 0; i < count; i++ {
		pos, err := pool.Draw(r)
		if err != nil {
			return err
		}
		kind := palette[r.Range(0, len(palette))]
		l.Add(spawn(kind, pos, r))
	}
	return nil
}

// intLog2 - целая часть log2(n), как (int)Mathf.Log(room, 2).
func intLog2(n int) int {
	v := 0
	for n > 1 {
		n >>= 1
		v++
	}
	return v
}

// placeEnemies спавнит ростер врагов комнаты и боссов по правилам
// номеров комнат: каждая пятая зовет босса, каждая десятая - двух.
func placeEnemies(l *RoomLayout, pool *cellPool, r *rng.Service) error {
	enemyCount := intLog2(l.Room)
	if l.Final {
		enemyCount = 0
	}

	roster := enemyRoster(l.Floor)
	boss := bossTemplate(l.Floor, l.Final)

	spawnEnemies := func(count int) error {
		// Формула может уйти в минус на ранних этажах,
		// отрицательное количество прижимается к нулю.
		if count < 0 {
			logger.Log.WithFields(logrus.Fields{
				"floor": l.Floor,
				"room":  l.Room,
				"count": count,
			}).Debug("Enemy count clamped to zero")
			count = 0
		}
		for i := 0; i < count; i++ {
			pos, err := pool.Draw(r)
			if err != nil {
				return err
			}
			t := roster[r.Range(0, len(roster))]
			l.Add(t.Spawn(pos, r))
		}
		return nil
	}

	switch {
	case l.Final:
		if err := spawnEnemies(enemyCount); err != nil {
			return err
		}
		l.Add(boss.Spawn(domain.Position{X: 7, Y: 7}, r))
	case l.Room%10 == 0:
		if err := spawnEnemies(enemyCount + l.Floor - 1 - 2); err != nil {
			return err
		}
		for i := 0; i < 2; i++ {
			pos, err := pool.Draw(r)
			if err != nil {
				return err
			}
			l.Add(boss.Spawn(pos, r))
		}
	case l.Room%5 == 0:
		if err := spawnEnemies(enemyCount + l.Floor - 1 - 1); err != nil {
			return err
		}
		pos, err := pool.Draw(r)
		if err != nil {
			return err
		}
		l.Add(boss.Spawn(pos, r))
	default:
		if err := spawnEnemies(enemyCount + l.Floor - 1); err != nil {
			return err
		}
	}
	return nil
}

// placeHazards раскладывает ловушки по глубине этажа: сначала только
// шипы, потом только лед, с девятого этажа вперемешку.
func placeHazards(l *RoomLayout, pool *cellPool, r *rng.Service) error {
	var palette []string
	switch {
	case l.Floor > 8:
		palette = []string{domain.HazardSpikes, domain.HazardIce}
	case l.Floor > 5:
		palette = []string{domain.HazardIce}
	case l.Floor > 2:
		palette = []string{domain.HazardSpikes}
	default:
		return nil
	}
	return layoutAtRandom(l, pool, r, palette, 0, l.Room, newHazardSpawner())
}

// placePlayerAndExit решает, где встает игрок и где появится выход.
func placePlayerAndExit(l *RoomLayout, prev *domain.Position, r *rng.Service) {
	if l.Final {
		// Финальная комната: игрок снизу по центру, выхода нет.
		l.PlayerSpawn = domain.Position{X: 7, Y: 0}
		return
	}

	var exit domain.Position
	if l.Room == 1 || prev == nil {
		l.PlayerSpawn = domain.Position{X: 0, Y: 0}
		// Выход в противоположном углу: двухуровневое дерево монет
		// выбирает ось и сторону.
		if r.Coin() == 0 {
			if r.Coin() == 0 {
				exit = domain.Position{X: 0, Y: l.Rows - 1}
			} else {
				exit = domain.Position{X: l.Columns - 1, Y: r.Range(0, l.Rows)}
			}
		} else {
			if r.Coin() == 0 {
				exit = domain.Position{X: l.Columns - 1, Y: 0}
			} else {
				exit = domain.Position{X: r.Range(0, l.Columns), Y: l.Rows - 1}
			}
		}
	} else {
		// Игрок входит там, где вышел из прошлой комнаты; по X
		// позиция прижимается к ширине новой комнаты.
		spawn := *prev
		if spawn.X > l.Columns-1 {
			spawn.X = l.Columns - 1
		}
		l.PlayerSpawn = spawn

		// Выход ставится на противоположный игроку край,
		// свободная ось случайна.
		switch spawn.X {
		case 0:
			exit.X = l.Columns - 1
		case l.Columns - 1:
			exit.X = 0
		default:
			exit.X = r.Range(0, l.Columns)
		}
		switch spawn.Y {
		case 0:
			exit.Y = l.Rows - 1
		case l.Rows - 1:
			exit.Y = 0
		default:
			exit.Y = r.Range(0, l.Rows)
		}
	}

	if l.Room%10 == 0 {
		// Десятая комната заперта: выход откроет только ключ,
		// который появится в центре после зачистки.
		l.Add(NewExit(domain.ExitKindLocked, exit, r))
		key := domain.Position{X: l.Columns / 2, Y: l.Rows / 2}
		l.KeyPos = &key
	} else {
		l.Add(NewExit(domain.ExitKindOpen, exit, r))
	}
	l.ExitPos = &exit
}
