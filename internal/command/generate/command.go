// Package generate 提供 tile 数据包生成命令。
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lwmacct/251207-go-pkg-version/pkg/version"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251218-go-easygui/internal/command"
	"github.com/lwmacct/251218-go-easygui/internal/config"
	"github.com/lwmacct/251218-go-easygui/internal/model"
	"github.com/lwmacct/251218-go-easygui/internal/output"
	"github.com/lwmacct/251218-go-easygui/internal/resource"
	"github.com/lwmacct/251218-go-easygui/internal/tile"
	pkgconfig "github.com/lwmacct/251218-go-easygui/pkg/config"
)

// ErrNoInput 未提供 tile 配置文件
var ErrNoInput = errors.New("no tile config given")

// Command 生成命令
var Command = &cli.Command{
	Name:      "easygui",
	Usage:     "根据 tile 配置生成容器 GUI 数据包",
	ArgsUsage: "<tile.yaml> [more.yaml ...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Value:   command.Defaults.Output.Dir,
			Usage:   "数据包根目录",
		},
		&cli.StringFlag{
			Name:    "template-source",
			Aliases: []string{"t"},
			Value:   command.Defaults.Template.Source,
			Usage:   "模板来源 (目录、.zip 或远程地址)，留空使用内置模板",
		},
		&cli.StringFlag{
			Name:  "template-fetch-dir",
			Value: command.Defaults.Template.FetchDir,
			Usage: "远程模板下载目录",
		},
		&cli.IntFlag{
			Name:  "template-cache-size",
			Value: command.Defaults.Template.CacheSize,
			Usage: "模板缓存条目数, 0 表示不缓存",
		},
		&cli.IntFlag{
			Name:  "pack-format",
			Value: command.Defaults.Pack.Format,
			Usage: "pack.mcmeta 的 pack_format",
		},
		&cli.StringFlag{
			Name:  "pack-description",
			Value: command.Defaults.Pack.Description,
			Usage: "pack.mcmeta 的描述",
		},
		&cli.StringSliceFlag{
			Name:  "label-defaults",
			Value: command.Defaults.Label.Defaults,
			Usage: "总是写入 #eg:label 的物品",
		},
	},
	Action: action,
	Commands: []*cli.Command{
		version.Command,
		{
			Name:   "settings",
			Usage:  "打印带注释的默认配置",
			Action: settingsAction,
		},
	},
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		_ = cli.ShowAppHelp(cmd)
		return ErrNoInput
	}

	cfg, err := config.Load(cmd, version.GetAppRawName())
	if err != nil {
		return err
	}

	return Run(ctx, cfg, cmd.Args().Slice())
}

// Run 按顺序处理每个 tile 配置文件，遇到第一个错误即停止。
func Run(ctx context.Context, cfg *config.Config, paths []string) error {
	store, closer, err := resource.Open(ctx, resource.Source{
		Location:  cfg.Template.Source,
		FetchDir:  cfg.Template.FetchDir,
		CacheSize: cfg.Template.CacheSize,
		OutputDir: cfg.Output.Dir,
	})
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	asm := tile.New(store, output.New(cfg.Output.Dir), tile.Options{
		PackFormat:      cfg.Pack.Format,
		PackDescription: cfg.Pack.Description,
		LabelDefaults:   cfg.Label.Defaults,
	})

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		t, err := model.LoadFile(path)
		if err != nil {
			return err
		}

		res, err := asm.Assemble(t)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		slog.Debug("Tile config processed", "path", path, "id", res.TileID)
	}

	slog.Info("Data pack generated", "dir", cfg.Output.Dir, "tiles", len(paths))

	return nil
}

func settingsAction(ctx context.Context, cmd *cli.Command) error {
	_, err := os.Stdout.Write(pkgconfig.ExampleYAML(config.DefaultConfig()))

	return err
}
