package proxyscripts

import (
	"fmt"
	"io"
	"strings"
)

var bannerRule = strings.Repeat("|", 49)

func printBanner(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n-|- %s -|-\n%s\n", bannerRule, title, bannerRule)
}

func printResponse(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\t - Proxy response: "+format+"\n", args...)
}

func printError(w io.Writer, err error) {
	printResponse(w, "Error %v", err)
}
