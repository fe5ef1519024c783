package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"ancestor-server/internal/domain"
	"ancestor-server/internal/systems"
	"ancestor-server/pkg/logger"
)

// enemyPhase - ход всех врагов комнаты в порядке спавна.
func (s *Session) enemyPhase() {
	for _, e := range s.Layout.Enemies() {
		if s.Finished() {
			return
		}
		if !e.IsAlive() {
			continue
		}
		s.moveEnemy(e)
	}
}

// moveEnemy - ход одного врага: пейсинг пропусков, касты босса,
// сближение с игроком и атака вплотную.
func (s *Session) moveEnemy(e *domain.Entity) {
	ai := e.AI

	// Обычные враги ходят через раз. Быстрые - каждый ход.
	if ai.SkipMove && !ai.FastMover {
		ai.SkipMove = false
		return
	}

	// Против плаща комната вязнет: два лишних простоя перед каждым
	// действием, счетчик сверяется до инкремента.
	if s.Sheet.Quick() {
		if ai.TurnCount < 2 {
			ai.TurnCount++
			return
		}
		ai.TurnCount = 0
	}

	if e.Boss != nil && s.bossCastTurn(e) {
		return
	}

	dx := domain.Sign(s.Player.Pos.X - e.Pos.X)
	dy := domain.Sign(s.Player.Pos.Y - e.Pos.Y)

	// Выбор оси: по прямой идем по ней, иначе монета.
	var sx, sy int
	switch {
	case e.Pos.X == s.Player.Pos.X:
		sx, sy = 0, dy
	case e.Pos.Y == s.Player.Pos.Y:
		sx, sy = dx, 0
	default:
		if s.Rng.Range(0, 2) == 0 {
			sx, sy = dx, 0
		} else {
			sx, sy = 0, dy
		}
	}

	for try := 0; try < systems.MaxSlideTries; try++ {
		target := e.Pos.Add(sx, sy)

		if target == s.Player.Pos {
			s.enemyAttackPlayer(e)
			ai.SkipMove = true
			return
		}

		res := systems.CalculateMove(e, sx, sy, s.Layout)
		if res.HasMoved {
			e.Pos = res.NewPos
			ai.SkipMove = true
			return
		}

		// Препятствие: обходим по часовой стрелке.
		sx, sy = systems.SlideDirection(sx, sy)
	}

	ai.SkipMove = true
}

// bossCastTurn отрабатывает цикл каста босса. Возвращает true, если
// ход ушел на магию: телеграф на одном ходу, залп на следующем.
func (s *Session) bossCastTurn(e *domain.Entity) bool {
	boss := e.Boss

	if boss.Casting {
		cells, kind := systems.BossSpellCells(boss.SpellChoice, boss.CastTarget)
		s.Effects = append(s.Effects, domain.Effect{
			Kind:   domain.EffectSpell,
			Entity: e.ID,
			Pos:    boss.CastTarget,
			Text:   kind,
		})

		for _, cell := range cells {
			if cell != s.Player.Pos {
				continue
			}
			dmg := systems.SpellDamageToPlayer(kind, s.Sheet.Intelligence)
			died := s.Sheet.LoseHealth(dmg)
			s.AddLog(fmt.Sprintf("%s обрушивает заклинание! %d урона.", e.Name, dmg), "COMBAT")
			if died {
				s.finishLost()
			}
		}

		boss.Casting = false
		e.AI.SkipMove = true
		return true
	}

	// Триггер телеграфа: игрок на "коне" от босса.
	adx := domain.Abs(s.Player.Pos.X - e.Pos.X)
	ady := domain.Abs(s.Player.Pos.Y - e.Pos.Y)
	if !((adx < 2 && ady == 2) || (adx == 2 && ady < 2)) {
		return false
	}

	boss.Casting = true
	boss.CastTarget = s.Player.Pos
	boss.SpellChoice = s.Rng.Range(0, 2)
	e.AI.SkipMove = true

	s.Effects = append(s.Effects, domain.Effect{
		Kind:   domain.EffectCastTelegraph,
		Entity: e.ID,
		Pos:    boss.CastTarget,
	})
	s.AddLog(fmt.Sprintf("%s начинает читать заклинание...", e.Name), "COMBAT")
	return true
}

// enemyAttackPlayer - удар вплотную. Броня листа гасит урон.
func (s *Session) enemyAttackPlayer(e *domain.Entity) {
	dmg := e.Stats.Damage - s.Sheet.ArmorBonus()
	if dmg < 0 {
		dmg = 0
	}
	died := s.Sheet.LoseHealth(dmg)

	s.Effects = append(s.Effects, domain.Effect{
		Kind:   domain.EffectHit,
		Entity: s.Player.ID,
		Value:  dmg,
	})
	s.AddLog(fmt.Sprintf("%s бьет вас на %d урона.", e.Name, dmg), "COMBAT")

	logger.Log.WithFields(logrus.Fields{
		"component": "enemy_ai",
		"enemy":     e.Kind,
		"damage":    dmg,
		"player_hp": s.Sheet.HP,
	}).Debug("Player hit")

	if died {
		s.finishLost()
	}
}
