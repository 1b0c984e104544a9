// This file is autogenerated by the TLDs generator (gen/TLDs). Representative
// subset of current IANA TLDs and public-suffix eTLDs; regenerate against
// https://data.iana.org/TLD/tlds-alpha-by-domain.txt and
// https://publicsuffix.org/list/public_suffix_list.dat for a complete list.
package tlds

// Official is a sorted list of public top-level domains (TLDs) and effective
// top-level domains (eTLDs).
var Official = []string{
	`academy`,
	`accountant`,
	`accountants`,
	`ad`,
	`ae`,
	`aero`,
	`agency`,
	`ai`,
	`airforce`,
	`apartments`,
	`app`,
	`ar`,
	`army`,
	`art`,
	`at`,
	`attorney`,
	`au`,
	`audit`,
	`auto`,
	`autos`,
	`baby`,
	`band`,
	`bank`,
	`bar`,
	`basketball`,
	`bd`,
	`be`,
	`beauty`,
	`beer`,
	`bg`,
	`bike`,
	`biz`,
	`bl`,
	`blog`,
	`boats`,
	`boutique`,
	`br`,
	`builders`,
	`buy`,
	`bw`,
	`by`,
	`ca`,
	`cafe`,
	`camp`,
	`camping`,
	`capital`,
	`care`,
	`cars`,
	`cat`,
	`catering`,
	`cc`,
	`ch`,
	`charity`,
	`chat`,
	`church`,
	`cinema`,
	`cl`,
	`clinic`,
	`cloud`,
	`club`,
	`cn`,
	`co`,
	`coffee`,
	`college`,
	`color`,
	`colors`,
	`com`,
	`community`,
	`computer`,
	`concert`,
	`condos`,
	`construction`,
	`consulting`,
	`contact`,
	`contractors`,
	`cooking`,
	`coop`,
	`coupons`,
	`courses`,
	`cpa`,
	`credit`,
	`creditcard`,
	`crypto`,
	`cy`,
	`cz`,
	`data`,
	`dating`,
	`de`,
	`deal`,
	`deals`,
	`degree`,
	`dental`,
	`dentist`,
	`design`,
	`dev`,
	`diamonds`,
	`digital`,
	`direct`,
	`discount`,
	`diving`,
	`dk`,
	`doctor`,
	`dog`,
	`domains`,
	`earth`,
	`easy`,
	`eco`,
	`edu`,
	`education`,
	`ee`,
	`eg`,
	`elite`,
	`email`,
	`energy`,
	`engineering`,
	`equipment`,
	`es`,
	`events`,
	`exchange`,
	`exclusive`,
	`express`,
	`faith`,
	`family`,
	`fans`,
	`farm`,
	`fashion`,
	`fast`,
	`fi`,
	`film`,
	`finance`,
	`financial`,
	`fire`,
	`fishing`,
	`fitness`,
	`flights`,
	`florist`,
	`flowers`,
	`fm`,
	`fo`,
	`fonts`,
	`food`,
	`foodnetwork`,
	`football`,
	`forum`,
	`foundation`,
	`fr`,
	`fun`,
	`fund`,
	`gallery`,
	`game`,
	`games`,
	`garden`,
	`gg`,
	`gh`,
	`gi`,
	`gift`,
	`gifts`,
	`gives`,
	`giving`,
	`gl`,
	`gold`,
	`golf`,
	`gov`,
	`gp`,
	`gr`,
	`graduics`,
	`graphics`,
	`green`,
	`guru`,
	`gym`,
	`health`,
	`hk`,
	`hockey`,
	`holiday`,
	`homes`,
	`hospital`,
	`host`,
	`hosting`,
	`hotel`,
	`hotels`,
	`house`,
	`hr`,
	`hu`,
	`hunting`,
	`id`,
	`ie`,
	`il`,
	`im`,
	`in`,
	`industries`,
	`info`,
	`institute`,
	`insurance`,
	`int`,
	`investments`,
	`io`,
	`is`,
	`it`,
	`je`,
	`jewelry`,
	`jp`,
	`ke`,
	`kids`,
	`kitchen`,
	`kr`,
	`kz`,
	`lab`,
	`land`,
	`law`,
	`lawyer`,
	`legal`,
	`li`,
	`life`,
	`live`,
	`loans`,
	`lt`,
	`lu`,
	`luxury`,
	`lv`,
	`ly`,
	`ma`,
	`market`,
	`markets`,
	`max`,
	`mba`,
	`mc`,
	`me`,
	`media`,
	`mf`,
	`mil`,
	`mission`,
	`money`,
	`mortgage`,
	`motel`,
	`moto`,
	`motorcycles`,
	`movie`,
	`mq`,
	`mt`,
	`mu`,
	`museum`,
	`music`,
	`mx`,
	`my`,
	`name`,
	`nature`,
	`navy`,
	`nc`,
	`net`,
	`network`,
	`news`,
	`ng`,
	`ngo`,
	`nl`,
	`no`,
	`nu`,
	`nz`,
	`online`,
	`org`,
	`outdoor`,
	`paint`,
	`party`,
	`pet`,
	`pets`,
	`pf`,
	`ph`,
	`photo`,
	`photography`,
	`pictures`,
	`piercing`,
	`pk`,
	`pl`,
	`platinum`,
	`plus`,
	`pm`,
	`police`,
	`premium`,
	`press`,
	`prestige`,
	`pro`,
	`properties`,
	`pt`,
	`pub`,
	`quick`,
	`racing`,
	`re`,
	`realestate`,
	`realty`,
	`recipes`,
	`rehab`,
	`rentals`,
	`rescue`,
	`research`,
	`restaurant`,
	`rings`,
	`ro`,
	`rocks`,
	`ru`,
	`rugby`,
	`running`,
	`sa`,
	`sale`,
	`sales`,
	`salon`,
	`sc`,
	`school`,
	`science`,
	`se`,
	`security`,
	`server`,
	`services`,
	`sg`,
	`sh`,
	`shop`,
	`shopping`,
	`si`,
	`silver`,
	`simple`,
	`singles`,
	`site`,
	`sk`,
	`ski`,
	`sm`,
	`smart`,
	`soccer`,
	`social`,
	`software`,
	`solar`,
	`solutions`,
	`spa`,
	`sport`,
	`sports`,
	`store`,
	`studio`,
	`style`,
	`su`,
	`supplies`,
	`supply`,
	`surf`,
	`surgery`,
	`systems`,
	`tattoo`,
	`tax`,
	`tech`,
	`technology`,
	`tennis`,
	`tf`,
	`th`,
	`theater`,
	`theatre`,
	`tickets`,
	`to`,
	`today`,
	`tools`,
	`tours`,
	`toys`,
	`tr`,
	`trade`,
	`trading`,
	`training`,
	`travel`,
	`tube`,
	`tv`,
	`tw`,
	`tz`,
	`ua`,
	`ug`,
	`uk`,
	`ultra`,
	`university`,
	`us`,
	`va`,
	`vacation`,
	`vacations`,
	`vet`,
	`video`,
	`videos`,
	`vip`,
	`vn`,
	`vodka`,
	`volunteer`,
	`wallet`,
	`watches`,
	`water`,
	`wedding`,
	`wellness`,
	`wf`,
	`wind`,
	`wine`,
	`world`,
	`ws`,
	`xn--3e0b707e`,
	`xn--45brj9c`,
	`xn--80ao21a`,
	`xn--90a3ac`,
	`xn--fiqs8s`,
	`xn--fiqz9s`,
	`xn--fpcrj9c3d`,
	`xn--gecrj9c`,
	`xn--h2brj9c`,
	`xn--j1amh`,
	`xn--j6w193g`,
	`xn--mgbaam7a8h`,
	`xn--ngbc5azd`,
	`xn--node`,
	`xn--p1ai`,
	`xyz`,
	`yachts`,
	`yoga`,
	`yt`,
	`za`,
	`zm`,
	`zw`,
	`ελ`,
	`бг`,
	`бел`,
	`дети`,
	`ею`,
	`ком`,
	`мон`,
	`орг`,
	`рф`,
	`сайт`,
	`срб`,
	`укр`,
	`қаз`,
	`ابوظبي`,
	`اتصالات`,
	`الجزائر`,
	`السعودية`,
	`امارات`,
	`بازار`,
	`بھارت`,
	`تونس`,
	`سودان`,
	`شبكة`,
	`عراق`,
	`عمان`,
	`قطر`,
	`كوم`,
	`مصر`,
	`موقع`,
	`परीकषा`,
	`भारत`,
	`संगठन`,
	`ਭਾਰਤ`,
	`ભારત`,
	`இந்தியா`,
	`భారత్`,
	`ලංකා`,
	`ไทย`,
	`ລາວ`,
	`გე`,
	`みんな`,
	`グーグル`,
	`コム`,
	`世界`,
	`中国`,
	`中文网`,
	`公司`,
	`公益`,
	`台湾`,
	`商城`,
	`商店`,
	`商标`,
	`在线`,
	`我爱你`,
	`手机`,
	`政务`,
	`新加坡`,
	`机构`,
	`网址`,
	`网店`,
	`网站`,
	`网络`,
	`谷歌`,
	`集团`,
	`香港`,
	`닷넷`,
	`닷컴`,
	`삼성`,
	`한국`,
}
