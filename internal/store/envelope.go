package store

import (
	"context"
	"errors"

	"quickbite-client/internal/api"
)

// Phase 一次异步操作的生命周期信号。
type Phase string

const (
	PhasePending   Phase = "pending"
	PhaseFulfilled Phase = "fulfilled"
	PhaseRejected  Phase = "rejected"
	PhaseMutated   Phase = "mutated" // 同步 reducer
)

type Event struct {
	Op    string
	Phase Phase
	Err   string // rejected 时的归一化文案
}

// Subscribe 返回事件通道和退订函数。通道带缓冲，消费不过来就丢，
// 订阅方应该按事件去拉 Snapshot 而不是依赖每一条。
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan Event, 16)
	s.subs[id] = ch
	s.mu.Unlock()
	return ch, func() {
		s.mu.Lock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
		s.mu.Unlock()
	}
}

func (s *Store) publish(e Event) {
	s.mu.Lock()
	for _, ch := range s.subs {
		select {
		case ch <- e:
		default:
		}
	}
	s.mu.Unlock()
}

// runThunk 三段式信封：pending 先行，然后 fulfilled / rejected 二选一。
// 同名操作并发下发时互不相干，谁的响应后到谁说了算（沿用源实现的
// last-response-wins，见 DESIGN.md）。
func runThunk[T any](s *Store, ctx context.Context, op string,
	call func(context.Context) (T, error),
	pending func(*State),
	fulfilled func(*State, T),
	rejected func(*State, string),
) error {
	s.mu.Lock()
	pending(&s.state)
	s.mu.Unlock()
	s.publish(Event{Op: op, Phase: PhasePending})

	v, err := call(ctx)
	if err != nil {
		msg := rejectionMessage(err)
		s.mu.Lock()
		rejected(&s.state, msg)
		s.mu.Unlock()
		s.publish(Event{Op: op, Phase: PhaseRejected, Err: msg})
		return err
	}

	s.mu.Lock()
	fulfilled(&s.state, v)
	s.mu.Unlock()
	s.publish(Event{Op: op, Phase: PhaseFulfilled})
	return nil
}

func rejectionMessage(err error) string {
	var ae *api.APIError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
