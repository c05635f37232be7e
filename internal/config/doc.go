// Package config 加载 ipconv 的可选配置文件。
//
// 基于 koanf，支持 YAML 和 JSON 两种格式，按扩展名检测。
// 未提供文件时使用 [Default]；文件中缺失的键保留默认值。
//
// 配置示例（YAML）：
//
//	log:
//	  level: debug
//	  format: json
//	  file: /var/log/ipconv/ipconv.log
//	session:
//	  decimal_keyword: digit
//	  strict: true
package config
