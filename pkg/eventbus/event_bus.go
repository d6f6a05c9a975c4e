package eventbus

import (
	"reflect"

	"github.com/sirupsen/logrus"
)

// EventBus delivers published events synchronously to every subscriber whose
// handler signature matches the published arguments. Handlers are plain
// functions; matching is done by reflection so modules can subscribe to
// domain events without a shared registry.
type EventBus interface {
	Publish(args ...any)
	Subscribe(handler any)
	Unsubscribe(handler any)
	Clear()
	SubscribersCount() int
}

func NewEventPublisher(log *logrus.Logger) EventBus {
	return &publisher{log: log}
}

type publisher struct {
	log      *logrus.Logger
	handlers []any
}

func (p *publisher) Publish(args ...any) {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = reflect.ValueOf(arg)
	}

	delivered := false
	for _, h := range p.handlers {
		if !matches(reflect.TypeOf(h), args) {
			continue
		}
		if p.invoke(reflect.ValueOf(h), in, args) {
			delivered = true
		}
	}

	if !delivered && p.log != nil {
		p.log.Warnf("eventbus.Publish: no matching subscribers for event with args: %v", in)
	}
}

// invoke calls a single handler, recovering panics so one misbehaving
// subscriber cannot take down the publisher. Returns false when the
// handler panicked.
func (p *publisher) invoke(fn reflect.Value, in []reflect.Value, args []any) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if p.log != nil {
				p.log.Errorf("eventbus: handler %s panicked with args %v: %v", fn.Type(), args, r)
			}
		}
	}()
	fn.Call(in)
	return true
}

func (p *publisher) Subscribe(handler any) {
	p.handlers = append(p.handlers, handler)
}

func (p *publisher) Unsubscribe(handler any) {
	target := reflect.ValueOf(handler).Pointer()
	for i, h := range p.handlers {
		if reflect.ValueOf(h).Pointer() == target {
			p.handlers = append(p.handlers[:i], p.handlers[i+1:]...)
			return
		}
	}
}

func (p *publisher) Clear() {
	p.handlers = nil
}

func (p *publisher) SubscribersCount() int {
	return len(p.handlers)
}

// matches reports whether fn can be called with args: same arity, every
// argument assignable to the corresponding parameter. A nil argument only
// fits interface or pointer parameters.
func matches(fn reflect.Type, args []any) bool {
	if fn == nil || fn.Kind() != reflect.Func || fn.NumIn() != len(args) {
		return false
	}
	for i, arg := range args {
		param := fn.In(i)
		if arg == nil {
			if param.Kind() != reflect.Interface && param.Kind() != reflect.Ptr {
				return false
			}
			continue
		}
		at := reflect.TypeOf(arg)
		if param.Kind() == reflect.Interface {
			if !at.Implements(param) {
				return false
			}
			continue
		}
		if !at.AssignableTo(param) {
			return false
		}
	}
	return true
}
