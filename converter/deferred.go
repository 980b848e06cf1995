package converter

import (
	"context"
	"fmt"

	"github.com/rgonek/docx-html-converter/htmltree"
)

// deferredSink buffers messages produced while a deferred task runs. Tasks
// execute concurrently, so each task writes only to its own sink; the
// resolver flushes sinks strictly in document order, which keeps the message
// log deterministic regardless of completion timing.
type deferredSink struct {
	messages []Message
}

func (d *deferredSink) addWarning(code MessageCode, text string) {
	d.messages = append(d.messages, Message{Severity: SeverityWarning, Code: code, Text: text})
}

// newDeferred allocates a placeholder id and its message sink.
func (s *state) newDeferred() (int64, *deferredSink) {
	s.deferredSeq++
	sink := &deferredSink{}
	s.deferredSinks[s.deferredSeq] = sink
	return s.deferredSeq, sink
}

// resolveDeferred materializes every deferred placeholder in the forest.
// Tasks start concurrently but are awaited one by one in document order; a
// failing task is reported and contributes zero nodes. Each placeholder is
// substituted exactly once, in place.
func (s *state) resolveDeferred(ctx context.Context, nodes []htmltree.Node) []htmltree.Node {
	pending := htmltree.CollectDeferred(nodes)
	if len(pending) == 0 {
		return nodes
	}

	type outcome struct {
		nodes []htmltree.Node
		err   error
	}
	outcomes := make([]chan outcome, len(pending))
	for i, d := range pending {
		ch := make(chan outcome, 1)
		outcomes[i] = ch
		go func(task htmltree.Task) {
			resolved, err := task(ctx)
			ch <- outcome{nodes: resolved, err: err}
		}(d.Task)
	}

	results := make(map[int64][]htmltree.Node, len(pending))
	for i, d := range pending {
		out := <-outcomes[i]
		if sink := s.deferredSinks[d.ID]; sink != nil {
			s.messages = append(s.messages, sink.messages...)
		}
		if out.err != nil {
			s.addError(CodeAssetFailed, fmt.Sprintf("asset could not be converted: %v", out.err))
			continue
		}
		results[d.ID] = out.nodes
	}

	return htmltree.SubstituteDeferred(nodes, results)
}
