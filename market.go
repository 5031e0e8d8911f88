package market

// Good — товар витрины. Принадлежит каталогу, ядром не изменяется.
// payload — секрет, который покупатель получает после оплаты.
type Good struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Descr   string `json:"descr"`
	Price   int64  `json:"price"`
	Payload string `json:"payload"`
}

// Invoice — локальная попытка покупки одного товара.
// OrderGUID пуст, если заказ в платёжной системе создать не удалось:
// такой счёт никогда не будет подтверждён как оплаченный.
type Invoice struct {
	ID        string
	OrderGUID string
	HTML      string // платёжное предложение для покупателя (реквизиты или кнопка)
}
