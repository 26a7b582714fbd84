package domain

import "time"

// Now — источник текущего времени для агрегатов. Подменяется в тестах.
var Now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Category — агрегат категории каталога.
// Инвариант: DeletedAt != nil тогда и только тогда, когда IsActive == false.
type Category struct {
	ID          CategoryID
	Name        *string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewCategory создаёт новую категорию. Валидация выполняется отдельным вызовом Validate.
func NewCategory(name *string, description *string, isActive bool) *Category {
	now := Now()

	var deletedAt *time.Time
	if !isActive {
		deletedAt = &now
	}

	return &Category{
		ID:          NewCategoryID(),
		Name:        name,
		Description: description,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
		DeletedAt:   deletedAt,
	}
}

// RestoreCategory восстанавливает агрегат из сохранённого состояния.
func RestoreCategory(
	id CategoryID,
	name *string,
	description *string,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
	deletedAt *time.Time,
) *Category {
	return &Category{
		ID:          id,
		Name:        name,
		Description: description,
		IsActive:    isActive,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

// Activate снимает мягкое удаление и делает категорию активной.
func (c *Category) Activate() *Category {
	c.DeletedAt = nil
	c.IsActive = true
	c.UpdatedAt = Now()

	return c
}

// Deactivate помечает категорию удалённой, сохраняя первую отметку DeletedAt.
func (c *Category) Deactivate() *Category {
	now := Now()
	if c.DeletedAt == nil {
		c.DeletedAt = &now
	}
	c.IsActive = false
	c.UpdatedAt = now

	return c
}

// Update заменяет имя и описание и переводит категорию в нужное состояние активности.
func (c *Category) Update(name *string, description *string, isActive bool) *Category {
	c.Name = name
	c.Description = description

	if isActive {
		return c.Activate()
	}

	return c.Deactivate()
}

// Validate проверяет категорию через переданный обработчик.
func (c *Category) Validate(handler ValidationHandler) error {
	return NewCategoryValidator(c, handler).Validate()
}

// NameValue возвращает имя или пустую строку, если оно не задано.
func (c *Category) NameValue() string {
	if c.Name == nil {
		return ""
	}

	return *c.Name
}

// DescriptionValue возвращает описание или пустую строку, если оно не задано.
func (c *Category) DescriptionValue() string {
	if c.Description == nil {
		return ""
	}

	return *c.Description
}
