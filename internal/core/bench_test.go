package core

import "testing"

func benchmarkRoomBroadcast(b *testing.B, recipients int) {
	gw := testGateway()

	sender := gw.Connect(newFakeTransport())
	gw.JoinChat(sender, "bench")

	target := newFakeTransport()
	gw.JoinChat(gw.Connect(target), "bench")

	for range recipients - 1 {
		gw.JoinChat(gw.Connect(newFakeTransport()), "bench")
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		gw.SendMessage(sender, map[string]any{"chatId": "bench", "content": "payload"})
		<-target.events
	}
}

func BenchmarkRoomBroadcast_10(b *testing.B)  { benchmarkRoomBroadcast(b, 10) }
func BenchmarkRoomBroadcast_100(b *testing.B) { benchmarkRoomBroadcast(b, 100) }
func BenchmarkRoomBroadcast_500(b *testing.B) { benchmarkRoomBroadcast(b, 500) }
