// headerdump decodes an MQTT fixed-header byte and prints its fields.
//
// Usage:
//
//	headerdump -hex 3c
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"github.com/hoodnoah/midge/pkg/packet"
)

var headerHex = flag.String("hex", "", "first fixed-header byte as two hex digits (e.g. 82)")

func main() {
	flag.Parse()

	if *headerHex == "" {
		flag.Usage()
		log.Fatal("missing -hex argument")
	}

	raw, err := hex.DecodeString(*headerHex)
	if err != nil || len(raw) != 1 {
		log.Fatalf("invalid hex byte %q", *headerHex)
	}

	h, err := packet.DecodeHeader(raw[0])
	if err != nil {
		log.Fatalf("decode 0x%02X: %v", raw[0], err)
	}

	fmt.Printf("byte:  %08b\n", raw[0])
	fmt.Printf("type:  %s (%d)\n", h.Type(), h.Type())

	if pub, ok := h.(packet.PublishHeader); ok {
		fmt.Printf("qos:   %s\n", pub.QoS())
		fmt.Printf("dup:   %v\n", pub.Dup())
	}
}
