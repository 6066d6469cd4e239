package all

import (
	_ "github.com/jakeogh/zfstool/cmd/alias"
	_ "github.com/jakeogh/zfstool/cmd/checkmountpoints"
	_ "github.com/jakeogh/zfstool/cmd/configcmd"
	_ "github.com/jakeogh/zfstool/cmd/configcmd/create"
	_ "github.com/jakeogh/zfstool/cmd/configcmd/example"
	_ "github.com/jakeogh/zfstool/cmd/configcmd/show"
	_ "github.com/jakeogh/zfstool/cmd/createfs"
	_ "github.com/jakeogh/zfstool/cmd/createpool"
	_ "github.com/jakeogh/zfstool/cmd/destroyfs"
	_ "github.com/jakeogh/zfstool/cmd/historycmd"
	_ "github.com/jakeogh/zfstool/cmd/plan"
	_ "github.com/jakeogh/zfstool/cmd/run"
	_ "github.com/jakeogh/zfstool/cmd/sharenfs"
	_ "github.com/jakeogh/zfstool/cmd/shell"
	_ "github.com/jakeogh/zfstool/cmd/snapshot"
	_ "github.com/jakeogh/zfstool/cmd/versioncmd"
	_ "github.com/jakeogh/zfstool/cmd/writeroot"
)
