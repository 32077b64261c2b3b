package main

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Simple tool to inspect the raw format of a replay file
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <replay-file>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File size: %d bytes\n\n", len(data))

	if len(data) < 15 {
		fmt.Fprintf(os.Stderr, "File too small\n")
		os.Exit(1)
	}

	fmt.Println("=== Hex Dump (first 128 bytes) ===")
	for i := 0; i < 128 && i < len(data); i += 16 {
		fmt.Printf("%08x  ", i)
		for j := 0; j < 16 && i+j < len(data); j++ {
			fmt.Printf("%02x ", data[i+j])
			if j == 7 {
				fmt.Printf(" ")
			}
		}
		fmt.Printf(" |")
		for j := 0; j < 16 && i+j < len(data); j++ {
			c := data[i+j]
			if c >= 32 && c < 127 {
				fmt.Printf("%c", c)
			} else {
				fmt.Printf(".")
			}
		}
		fmt.Printf("|\n")
	}

	fmt.Println("\n=== Header Interpretation ===")

	magic := data[0:5]
	fmt.Printf("Magic: % x (%q)", magic, string(magic[:4]))
	if string(magic) == "CRRP\x00" {
		fmt.Println(" - valid")
	} else {
		fmt.Println(" - INVALID, expected \"CRRP\\x00\"")
	}

	version := data[5:9]
	fmt.Printf("Version: %d.%d.%d.%d\n", version[0], version[1], version[2], version[3])

	mapPathLen := int(binary.LittleEndian.Uint16(data[9:11]))
	offset := 11
	if offset+mapPathLen > len(data) {
		fmt.Fprintf(os.Stderr, "Map path length %d overruns the file\n", mapPathLen)
		os.Exit(1)
	}
	fmt.Printf("Map path (%d bytes): %q\n", mapPathLen, string(data[offset:offset+mapPathLen]))
	offset += mapPathLen

	if offset+6 > len(data) {
		fmt.Fprintf(os.Stderr, "Header truncated before seed/seat mask\n")
		os.Exit(1)
	}
	seed := binary.LittleEndian.Uint32(data[offset : offset+4])
	seatMask := binary.LittleEndian.Uint16(data[offset+4 : offset+6])
	fmt.Printf("Random seed: %d (0x%08x)\n", seed, seed)
	fmt.Printf("Seat mask: 0x%04x (", seatMask)
	first := true
	for seat := 0; seat < 15; seat++ {
		if seatMask&(1<<seat) != 0 {
			if !first {
				fmt.Printf(", ")
			}
			fmt.Printf("seat %d", seat)
			first = false
		}
	}
	fmt.Println(")")
	offset += 6

	fmt.Println("\n=== First Record ===")
	if offset+11 > len(data) {
		fmt.Println("No body records")
		return
	}
	timestamp := binary.LittleEndian.Uint32(data[offset : offset+4])
	msgType := data[offset+4]
	content := data[offset+5]
	seat := data[offset+6]
	paramLen := binary.LittleEndian.Uint32(data[offset+7 : offset+11])
	fmt.Printf("Timestamp: %d\n", timestamp)
	fmt.Printf("Message type: %d\n", msgType)
	fmt.Printf("Content type: %d\n", content)
	fmt.Printf("Seat: %d\n", seat)
	fmt.Printf("Parameter block: %d bytes\n", paramLen)
}
