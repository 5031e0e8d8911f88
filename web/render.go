package web

import (
	"fmt"
	"html"
	"strings"

	market "github.com/popitov/websitemarket"
)

// Общие стили витрины.
const css = `
body{font:16px system-ui,sans-serif;margin:0;padding:24px;max-width:720px}
.grid{display:grid;gap:20px}
.card{border:1px solid #eee;border-radius:12px;padding:18px;box-shadow:0 1px 4px #0001}
button,a.btn{background:#24A1DE;color:#fff;border:0;border-radius:8px;padding:8px 18px;cursor:pointer}
button:hover,a.btn:hover{opacity:.9}
a.btn{display:block;margin:12px 0;text-decoration:none;font-weight:600;text-align:center}
pre{white-space:pre-wrap;border:1px dashed #bbb;background:#fafafa;padding:12px;border-radius:8px}
`

func page(body string) string {
	return "<!doctype html><meta charset=utf-8>" + body
}

func indexPage(botURL string) string {
	return page(fmt.Sprintf(`
<style>%s</style>
<div style="display:flex;justify-content:center;align-items:center;height:100vh">
  <div class="card" style="text-align:center">
    <h2>ℹ️ Получите доступ</h2>
    <a class="btn primary" href="%s">🚀 Перейти в бот</a>
    <a class="btn" href="/shop">💳 Приобрести здесь</a>
  </div>
</div>`, css, html.EscapeString(botURL)))
}

func shopPage(goods []market.Good) string {
	var items strings.Builder
	for _, g := range goods {
		fmt.Fprintf(&items, `
<div class="card">
  <h3>%s</h3>
  <p>%s</p>
  <b>%d&nbsp;₽</b><br>
  <form action="/buy" method="post">
    <input type="hidden" name="tid" value="%d">
    <button>Купить</button>
  </form>
</div>`, html.EscapeString(g.Name), html.EscapeString(g.Descr), g.Price, g.ID)
	}
	return page(fmt.Sprintf(`<h1>Магазин</h1><div class="grid">%s</div><style>%s</style>`, items.String(), css))
}

func buyPage(good market.Good, inv market.Invoice) string {
	return page(fmt.Sprintf(`
<h2>Оплата — %s</h2>
<p>Переведите <b>%d ₽</b> на реквизиты:</p>
%s
<form action="/check" method="post">
  <input type="hidden" name="tid" value="%d">
  <input type="hidden" name="inv" value="%s">
  <button>✅ Я оплатил</button>
</form>
<form action="/shop" method="get" style="margin-top:8px">
  <button>❌ Отмена</button>
</form>
<style>%s</style>`,
		html.EscapeString(good.Name), good.Price, inv.HTML, good.ID, html.EscapeString(inv.ID), css))
}

func pendingPage() string {
	return page(`<p>Платёж ещё не подтверждён.</p><a href="/shop">← Назад</a>`)
}

func paidPage(good market.Good) string {
	return page(fmt.Sprintf(`
<h2>✅ Спасибо за покупку!</h2>
<pre>%s</pre>
<a href="/shop">← Вернуться</a>
<style>%s</style>`, html.EscapeString(good.Payload), css))
}
