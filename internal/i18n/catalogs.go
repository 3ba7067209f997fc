package i18n

// catalogs holds the message templates per language. Russian is complete;
// other languages fall back to it per key.
var catalogs = map[string]map[string]string{
	"ru": {
		"action.walk.done":      "Прогулка окончена! Ты получил %.0f опыта и кое-что нашёл",
		"action.work.done":      "Работа окончена! Ты заработал %d бабла и получил %.0f опыта",
		"action.sleep.done":     "Ты выспался! Силы восстановлены, получено %.0f опыта",
		"action.game.done":      "Ты наигрался! Настроение поднялось, получено %.0f опыта",
		"action.in_progress":    "Действие ещё не окончено, осталось %s",
		"encounter.met":         "По пути ты встретил: %s",
		"level.up":              "Поздравляю! Теперь у тебя %d уровень",
		"achievement.completed": "Достижение выполнено: %s",
		"quest.completed":       "Квест выполнен! Награда: %d бабла и %.0f опыта",
		"gift.claimed":          "Ежедневный подарок получен! Серия: %d",
		"stat.low.hunger":       "Ты проголодался (%d%%), поешь что-нибудь",
		"stat.low.fatigue":      "Ты устал (%d%%), отдохни",
		"stat.low.mood":         "Настроение на нуле (%d%%), развлекись",
		"stat.low.health":       "Здоровье на исходе (%d%%), подлечись",
		"gift.ready":            "Ежедневный подарок ждёт тебя!",
		"action.ready":          "Действие окончено, пора проверить результат!",
	},
	"en": {
		"action.walk.done":      "The walk is over! You earned %.0f XP and found something",
		"action.work.done":      "Work is done! You earned %d coins and %.0f XP",
		"action.sleep.done":     "You are well rested! Energy restored, %.0f XP earned",
		"action.game.done":      "Game over! Mood improved, %.0f XP earned",
		"action.in_progress":    "The action is not finished yet, %s left",
		"encounter.met":         "On the way you met: %s",
		"level.up":              "Congratulations! You are now level %d",
		"achievement.completed": "Achievement unlocked: %s",
		"quest.completed":       "Quest complete! Reward: %d coins and %.0f XP",
		"gift.claimed":          "Daily gift claimed! Streak: %d",
		"stat.low.hunger":       "You are hungry (%d%%), eat something",
		"stat.low.fatigue":      "You are tired (%d%%), get some rest",
		"stat.low.mood":         "Your mood is low (%d%%), have some fun",
		"stat.low.health":       "Your health is low (%d%%), heal up",
		"gift.ready":            "Your daily gift is waiting!",
		"action.ready":          "Your action has finished, come check the result!",
	},
}
