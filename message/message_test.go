package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ghs/core"
	"github.com/katalvlaran/ghs/message"
)

func TestFlag_String(t *testing.T) {
	want := []string{"PULSE", "FRAG", "RFRAG", "MCOE", "ACK", "MERGE", "NEW", "ECHO", "DISP", "RDISP"}
	for i, f := range message.Flags {
		assert.Equal(t, want[i], f.String())
	}
	assert.Equal(t, "Flag(99)", message.Flag(99).String())
}

func TestPayload_FlagMatchesType(t *testing.T) {
	payloads := []message.Payload{
		message.Pulse{}, message.Frag{}, message.RFrag{}, message.MCOE{}, message.Ack{},
		message.Merge{}, message.New{}, message.Echo{}, message.Disp{}, message.RDisp{},
	}
	for i, p := range payloads {
		assert.Equal(t, message.Flags[i], p.Flag())
	}
}

func TestEnvelope_String(t *testing.T) {
	e := &core.Edge{From: 2, To: 3, Weight: 1.5}
	cases := []struct {
		env  message.Envelope
		want string
	}{
		{message.Envelope{From: 1, To: 2, Phase: 0, Seq: 1, Payload: message.Pulse{}}, "1->2 PULSE p=0 #1"},
		{message.Envelope{From: 1, To: 2, Phase: 3, Seq: 4, Payload: message.RFrag{Fragment: 7}}, "1->2 RFRAG p=3 #4 frag=7"},
		{message.Envelope{From: 2, To: 1, Phase: 1, Seq: 2, Payload: message.MCOE{Edge: e}}, "2->1 MCOE p=1 #2 edge=2--3(1.5)"},
		{message.Envelope{From: 2, To: 1, Phase: 1, Seq: 3, Payload: message.MCOE{}}, "2->1 MCOE p=1 #3 edge=none"},
		{message.Envelope{From: 4, To: 1, Phase: 2, Seq: 1, Payload: message.New{Fragment: 4}}, "4->1 NEW p=2 #1 frag=4"},
		{message.Envelope{From: 4, To: 1, Phase: 2, Seq: 2, Payload: message.New{Fragment: 4, Late: true}}, "4->1 NEW p=2 #2 frag=4 late"},
		{message.Envelope{From: 2, To: 1, Phase: 1, Seq: 3}, "2->1 <nil> p=1 #3"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.env.String())
	}
}
