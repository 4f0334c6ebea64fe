package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/prooflines/bootstrap"
	"github.com/fulldump/prooflines/configuration"
)

var banner = `
 ____                   __ _ _
|  _ \ _ __ ___   ___  / _| (_)_ __   ___  ___
| |_) | '__/ _ \ / _ \| |_| | | '_ \ / _ \/ __|
|  __/| | | (_) | (_) |  _| | | | | |  __/\__ \
|_|   |_|  \___/ \___/|_| |_|_|_| |_|\___||___/
                        version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(&c)
	start()
}
