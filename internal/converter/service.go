package converter

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/voice_converter/internal/voice"
)

// Orchestrator решает, в какую сторону конвертировать, и сводит ответ сервиса
// обратно в State. Флаг loading только информирует: параллельные вызовы
// не блокируются, побеждает последний ответ.
type Orchestrator struct {
	svc     Service
	log     *logger.ZapLogger
	loading atomic.Bool
}

func NewOrchestrator(svc Service, log *logger.ZapLogger) *Orchestrator {
	return &Orchestrator{
		svc: svc,
		log: log,
	}
}

func (o *Orchestrator) Loading() bool {
	return o.loading.Load()
}

// Convert — синхронный вариант, возвращает новое состояние и исход
func (o *Orchestrator) Convert(ctx context.Context, st State) (State, Outcome) {
	req, ok := o.prepare(st)
	if !ok {
		return st, Outcome{Kind: OutcomeSkipped}
	}

	o.loading.Store(true)
	out := o.dispatch(ctx, req)
	return out.Apply(st), out
}

// ConvertAsync — то же самое, но результат приходит в канал.
// loading выставлен уже к моменту возврата.
func (o *Orchestrator) ConvertAsync(ctx context.Context, st State) <-chan Result {
	ch := make(chan Result, 1)

	req, ok := o.prepare(st)
	if !ok {
		ch <- Result{State: st, Outcome: Outcome{Kind: OutcomeSkipped}}
		close(ch)
		return ch
	}

	o.loading.Store(true)
	go func() {
		defer close(ch)
		out := o.dispatch(ctx, req)
		ch <- Result{State: out.Apply(st), Outcome: out}
	}()
	return ch
}

func (o *Orchestrator) prepare(st State) (Request, bool) {
	src, ok := st.Source()
	if !ok {
		o.log.Log(logger.LogEntry{Level: "debug", Message: "nothing to convert", Service: "converter"})
		return Request{}, false
	}

	return Request{
		Text:      src,
		Direction: voice.DirectionFor(voice.Classify(src)),
	}, true
}

// dispatch — единственная точка ожидания. loading сбрасывается при любом исходе.
func (o *Orchestrator) dispatch(ctx context.Context, req Request) Outcome {
	defer o.loading.Store(false)

	out := Outcome{Request: req, Target: TargetSlot(req.Direction)}

	text, err := o.call(ctx, req)
	if err != nil {
		o.log.Log(logger.LogEntry{
			Level:   "error",
			Message: fmt.Sprintf("conversion failed (%s)", req.Direction),
			Service: "converter",
			Error:   err,
		})
		out.Kind = OutcomeFailure
		out.Reason = err.Error()
		return out
	}

	out.Kind = OutcomeSuccess
	out.ConvertedText = text
	return out
}

// call — паника в реализации порта превращается в обычную ошибку
func (o *Orchestrator) call(ctx context.Context, req Request) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("conversion service panic: %v", r)
		}
	}()
	return o.svc.Convert(ctx, req)
}
