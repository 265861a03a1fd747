// Package kvconf 将扁平的 key=value 配置文件加载为嵌套文档。
//
// key 中的点号表示层级，"a.b.c=1" 得到 {a: {b: {c: "1"}}}。
// 所有叶子值均为字符串，不做类型推断。
//
// # 文件格式
//
//   - 空行忽略
//   - 首个非空白字符为 "#" 的行是注释（不支持行尾注释）
//   - 其余行按第一个 "=" 切分，两侧去除空白后分别作为 key 与 value
//   - value 原样保留，不处理引号与转义
//   - 同一完整路径重复出现时，后出现的值生效
//
// 示例：
//
//	# config.conf
//	server.host = localhost
//	server.port = 8080
//	name = demo
//
// # 快速开始
//
//	doc, err := kvconf.Load("config.conf")
//	if err != nil {
//	    return err
//	}
//	host, _ := doc.Lookup("server.host")
//
// 解码到结构体（字段名取 json tag，字符串按字段类型转换）：
//
//	var cfg struct {
//	    Server struct {
//	        Host string `json:"host"`
//	        Port int    `json:"port"`
//	    } `json:"server"`
//	}
//	err = doc.Unmarshal(&cfg)
//
// # 错误处理
//
//   - [FileError] - 文件无法打开或读取，加载中止
//   - [KeyConflictError] - 路径经过已有的叶子值（如先 a=1 后 a.b=2），加载中止；
//     可通过 [WithConflictPolicy]([ConflictOverwrite]) 改为覆盖
//   - [MalformedLineError] - 行中缺少 "="，默认跳过并记录 Warn 日志，
//     使用 [WithStrict] 时加载中止
//
// 加载中止时，已处理的行仍保留在文档中。
//
// # 输出
//
// 使用 [Encode] 输出 JSON 或 YAML：
//
//	_ = kvconf.Encode(os.Stdout, doc, kvconf.FormatYAML)
package kvconf
