package application

import (
	"fmt"
	"reflect"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ghazalrb98/sep/pkg/eventbus"
)

// Controller is a routable unit registered on the root router.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Application wires services, controllers and shared middleware together.
// Services are registered and looked up by concrete type.
type Application interface {
	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
	RegisterControllers(controllers ...Controller)
	Controllers() []Controller
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	Middleware() []mux.MiddlewareFunc
	EventPublisher() eventbus.EventBus
	Logger() *logrus.Logger
}

type ApplicationOptions struct {
	EventPublisher eventbus.EventBus
	Logger         *logrus.Logger
}

func New(opts *ApplicationOptions) Application {
	return &application{
		eventPublisher: opts.EventPublisher,
		logger:         opts.Logger,
		services:       make(map[reflect.Type]interface{}),
	}
}

type application struct {
	eventPublisher eventbus.EventBus
	logger         *logrus.Logger
	services       map[reflect.Type]interface{}
	controllers    []Controller
	middleware     []mux.MiddlewareFunc
}

func (a *application) RegisterServices(services ...interface{}) {
	for _, svc := range services {
		a.services[serviceType(svc)] = svc
	}
}

// Service looks up a registered service by the type of the sample value,
// e.g. app.Service(services.RequestService{}).
func (a *application) Service(service interface{}) interface{} {
	svc, ok := a.services[serviceType(service)]
	if !ok {
		panic(fmt.Sprintf("application: service %T not registered", service))
	}
	return svc
}

func (a *application) RegisterControllers(controllers ...Controller) {
	a.controllers = append(a.controllers, controllers...)
}

func (a *application) Controllers() []Controller {
	return a.controllers
}

func (a *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.middleware = append(a.middleware, middleware...)
}

func (a *application) Middleware() []mux.MiddlewareFunc {
	return a.middleware
}

func (a *application) EventPublisher() eventbus.EventBus {
	return a.eventPublisher
}

func (a *application) Logger() *logrus.Logger {
	return a.logger
}

func serviceType(service interface{}) reflect.Type {
	t := reflect.TypeOf(service)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
