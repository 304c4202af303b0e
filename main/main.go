package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/fifoslab"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	q := fifoslab.New(64)
	payload := make([]byte, 57)
	for i := 0; i < 100000; i++ {
		q.PushItem(payload)
		if q.ItemCount() == 32 {
			var it fifoslab.Iter
			for {
				if _, ok := q.Next(&it); !ok {
					break
				}
			}
			for q.ItemCount() > 0 {
				q.PopItem()
			}
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
