package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/FlaviusPintican/radiology-timetable/internal/config"
	"github.com/FlaviusPintican/radiology-timetable/internal/model"
	"github.com/FlaviusPintican/radiology-timetable/internal/service/excel"
	"github.com/FlaviusPintican/radiology-timetable/internal/service/roster"
)

var (
	inFile     = flag.String("in", "", "人员表文件 (覆盖配置文件)")
	outFile    = flag.String("out", "", "排班结果输出文件 (覆盖配置文件)")
	configPath = flag.String("config", "", "配置文件路径 (默认取可执行文件目录下的 config.toml)")
	priority   = flag.String("priority", "", "优先排班人员姓名 (覆盖配置文件)")
	seed       = flag.Int64("seed", 0, "随机种子 (0 表示按时间播种)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Timetable - 放射科月度排班工具")
	fmt.Println("==========================================")

	// 加载配置
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖配置
	if *inFile != "" {
		cfg.Files.InputFile = *inFile
	}
	if *outFile != "" {
		cfg.Files.OutputFile = *outFile
	}
	if *priority != "" {
		cfg.Rules.PriorityWorker = *priority
	}

	// 读取人员表
	reader := excel.NewReader()
	if err := reader.Load(cfg.Files.InputFile); err != nil {
		log.Fatalf("读取人员表失败: %v", err)
	}
	defer reader.Close()

	workers, weekendWilling, err := reader.Workers()
	if err != nil {
		log.Fatalf("解析人员表失败: %v", err)
	}

	month := model.TargetMonth(time.Now())
	fmt.Printf("目标月份: %s ~ %s, 人员 %d 名\n",
		model.DateKey(month.First), model.DateKey(month.Last), len(workers))

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	// 运行规则管线
	engine := roster.NewEngine(workers, roster.Options{
		Rules:          cfg.Rules,
		Month:          month,
		Calendar:       model.NewCalendar(cfg.Calendar.PublicHolidays),
		WeekendWilling: weekendWilling,
		Rng:            rng,
	})
	grid := engine.Run()

	if shortfalls := engine.ShortfallDates(); len(shortfalls) > 0 {
		log.Printf("以下日期早/午班未达最低人数: %v", shortfalls)
	}

	// 导出
	table := roster.Assemble(grid, workers, month, model.NewCalendar(cfg.Calendar.PublicHolidays))
	if err := excel.NewWriter().Write(table, cfg.Files.OutputFile); err != nil {
		log.Fatalf("导出排班表失败: %v", err)
	}

	fmt.Printf("排班完成: %s (文件ID %s)\n", cfg.Files.OutputFile, reader.FileID())
}
