package main

import (
	"fmt"
	"os"
	"strconv"

	rot "github.com/harrycraft44/rotnode"
)

func main() {
	if len(os.Args) <= 1 {
		fmt.Println("Usage: decode <text> [shift|preset] [charset]")
		return
	}

	var opts []rot.Option
	if len(os.Args) > 2 {
		if f, err := strconv.ParseFloat(os.Args[2], 64); err == nil {
			opts = append(opts, rot.WithShift(rot.CoerceShift(f)))
		} else {
			opts = append(opts, rot.WithPreset(rot.Preset(os.Args[2])))
		}
	}
	if len(os.Args) > 3 {
		opts = append(opts, rot.WithCharset(rot.Charset(os.Args[3])))
	}

	fmt.Println(rot.Decode(os.Args[1], opts...))
}
