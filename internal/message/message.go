// Package message defines the events passed between the pbcat workers.
//
// Every event travels over a single ordered channel from the two watchers
// (stdin and clipboard) to the handler. The Kind records which side the text
// came from, which in turn decides the sink it is routed to:
//
//	ClipboardTextChanged → stdout
//	ReceivedText         → clipboard
//	Exit                 → stop
package message

// Kind identifies the origin of a message.
type Kind int

const (
	// KindClipboardTextChanged is text observed on the system clipboard.
	KindClipboardTextChanged Kind = iota + 1
	// KindReceivedText is text read from a framed record on stdin.
	KindReceivedText
	// KindExit means no more input will arrive.
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindClipboardTextChanged:
		return "ClipboardTextChanged"
	case KindReceivedText:
		return "ReceivedText"
	case KindExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Message is a single event. Text is always valid UTF-8 and is empty for Exit.
type Message struct {
	Kind Kind
	Text string
}

// ClipboardTextChanged returns a message carrying text seen on the clipboard.
func ClipboardTextChanged(text string) Message {
	return Message{Kind: KindClipboardTextChanged, Text: text}
}

// ReceivedText returns a message carrying text read from the input stream.
func ReceivedText(text string) Message {
	return Message{Kind: KindReceivedText, Text: text}
}

// Exit returns the end-of-input sentinel.
func Exit() Message {
	return Message{Kind: KindExit}
}

// TextPayload returns the message text. ok is false for Exit, which carries
// no payload and never takes part in deduplication.
func (m Message) TextPayload() (text string, ok bool) {
	switch m.Kind {
	case KindClipboardTextChanged, KindReceivedText:
		return m.Text, true
	default:
		return "", false
	}
}

// String returns the kind name only, so message text never reaches logs
// through it.
func (m Message) String() string { return m.Kind.String() }
