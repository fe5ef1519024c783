package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"ancestor-server/internal/domain"
	"ancestor-server/pkg/logger"
)

// AttackResult - исход одной атаки.
type AttackResult struct {
	Damage  int
	Died    bool
	Message string
	Effects []domain.Effect
}

// ResolveAttack бьет цель на damage единиц с учетом ее брони.
// Возвращает урон, факт смерти и токены эффектов для презентации.
// Смерть босса дополнительно продвигается тут: пороги фаз проверяются
// после каждого удара и эмитят подкрепления.
func ResolveAttack(attackerName string, damage int, target *domain.Entity) AttackResult {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"attacker":    attackerName,
		"target_id":   target.ID,
		"target_name": target.Name,
	})

	res := AttackResult{}

	if target.Stats == nil {
		combatLogger.Warn("Attack failed: target has no StatsComponent.")
		res.Message = fmt.Sprintf("%s атакует %s, но это бесполезно.", attackerName, target.Name)
		return res
	}
	if target.Stats.IsDead {
		combatLogger.Info("Attack ineffective: target is already dead.")
		res.Message = fmt.Sprintf("%s пинает то, что осталось от %s.", attackerName, target.Name)
		return res
	}

	final := damage - target.Stats.Armor
	if final < 0 {
		final = 0
	}

	hpBefore := target.Stats.HP
	died := target.Stats.TakeDamage(final)

	res.Damage = final
	res.Died = died
	res.Effects = append(res.Effects, domain.Effect{
		Kind:   domain.EffectHit,
		Entity: target.ID,
		Value:  final,
	})
	res.Message = fmt.Sprintf("%s наносит %d урона по %s.", attackerName, final, target.Name)

	// Босс зовет подкрепления на порогах здоровья.
	if target.Boss != nil && !died {
		if n := target.Boss.AdvancePhase(target.Stats); n > 0 {
			res.Effects = append(res.Effects, domain.Effect{
				Kind:   domain.EffectReinforcement,
				Entity: target.ID,
				Pos:    target.Pos,
				Value:  n,
			})
		}
	}

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"defense":     target.Stats.Armor,
		"final":       final,
		"hp_before":   hpBefore,
		"hp_after":    target.Stats.HP,
		"target_died": died,
	}).Info("Attack resolved.")

	if died {
		res.Effects = append(res.Effects, domain.Effect{
			Kind:   domain.EffectDeathAnim,
			Entity: target.ID,
			Pos:    target.Pos,
		})
		res.Message += fmt.Sprintf(" %s погибает.", target.Name)
		MarkCorpse(target)
	}

	return res
}

// MarkCorpse переводит сущность в состояние трупа: символ меняется,
// клетка освобождается. Стены и контейнеры деактивируются сразу,
// врагов и боссов презентация убирает после анимации смерти.
func MarkCorpse(e *domain.Entity) {
	switch e.Type {
	case domain.EntityTypeWall, domain.EntityTypeContainer:
		e.Active = false
	default:
		if e.Render != nil {
			e.Render.Symbol = "%"
			e.Render.Color = "#6B7280"
		}
	}
}

// ProjectileDamage считает урон заклинаний игрока по сущностям.
func ProjectileDamage(kind string, intelligence int) int {
	switch kind {
	case domain.CauseFireball:
		return intelligence * domain.FireballPerInt
	case domain.CauseIceShards:
		return intelligence * domain.IceShardsPerInt
	}
	return 0
}

// SpellDamageToPlayer считает урон вражеских заклинаний по игроку:
// интеллект гасит входящую магию.
func SpellDamageToPlayer(kind string, intelligence int) int {
	var dmg int
	switch kind {
	case domain.CauseFireball:
		dmg = domain.FireballBase - intelligence*10
	case domain.CauseIceShards:
		dmg = domain.IceShardsBase - intelligence*10
	}
	if dmg < 0 {
		dmg = 0
	}
	return dmg
}
