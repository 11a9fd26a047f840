package load_catalog

// Request модель запроса на загрузку каталога
type Request struct {
	Language string // язык описаний отелей и курортов
}
