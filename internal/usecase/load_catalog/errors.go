package load_catalog

import "errors"

var (
	// ErrCatalogFetch возвращается, когда хотя бы одна часть каталога не загрузилась.
	// Частичный каталог не возвращается; пользователь может повторить загрузку.
	ErrCatalogFetch = errors.New("load_catalog: failed to fetch catalog")
)
