package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/rawvec"
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
	for i := 0; i < 10000; i++ {
		v := rawvec.New[int]()
		for j := 0; j < 512; j++ {
			_ = v.PushBack(j)
		}
		for j := 0; j < 64; j++ {
			_, _ = v.Insert(128, j)
		}
		for v.Len() > 256 {
			v.PopBack()
		}
		w, _ := v.Clone()
		w.MoveFrom(v)
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
