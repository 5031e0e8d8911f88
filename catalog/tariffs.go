package catalog

import market "github.com/popitov/websitemarket"

// Встроенный список тарифов на случай, когда хранилище не настроено
// или недоступно.
var defaultGoods = []market.Good{
	{
		ID:      1,
		Name:    "Доступ на месяц",
		Descr:   "Приглашение в закрытый бот на 30 дней",
		Price:   500,
		Payload: "https://t.me/+invite-month",
	},
	{
		ID:      2,
		Name:    "Доступ на год",
		Descr:   "Приглашение в закрытый бот на 365 дней",
		Price:   4500,
		Payload: "https://t.me/+invite-year",
	},
	{
		ID:      3,
		Name:    "Навсегда",
		Descr:   "Бессрочное приглашение в закрытый бот",
		Price:   9900,
		Payload: "https://t.me/+invite-forever",
	},
}
