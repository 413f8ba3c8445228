package constants

// Имена таблиц во внешнем хранилище записей
const (
	TableProperties = "Properties"
	TablePosts      = "Posts"
	TableImages     = "Images"
	// TableContacts — таблица контактов; брокеры создаются там внешним
	// процессом, логин — это проверка существования по email
	TableContacts = "Users"
)
