package ds

// 2. Таблица постов
type Post struct {
	ID      uint   `gorm:"primaryKey"`
	Title   string `gorm:"type:varchar(100);not null"`
	Content string `gorm:"type:text;not null"`
	// Без внешнего ключа: при удалении пользователя его посты остаются
	// и ссылаются на несуществующий id
	UserID *uint `gorm:"index"`
}
