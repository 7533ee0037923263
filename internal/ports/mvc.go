package ports

import "mailstub/internal/core/domain"

type EngineContext interface {
	RequestPath() string
}

type Controller interface {
	Name() string
}

type ControllerContext interface {
	Name() string
	Action() string
	PropertyBag() domain.PropertyBag
}
